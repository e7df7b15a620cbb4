package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/deepheart/deepheart-api/schema"
	"github.com/deepheart/deepheart-api/store"
)

// userSignup registers a doctor or a patient
func (s *Server) userSignup(c *gin.Context) {
	logger := log.WithField("api", "userSignup")

	var params struct {
		Email     string `json:"email" binding:"required,email"`
		Name      string `json:"name" binding:"required"`
		Password  string `json:"password" binding:"required,min=8"`
		Role      string `json:"role" binding:"required"`
		DoctorID  string `json:"doctor_id"`
		Birthdate string `json:"birthdate"`
	}

	if err := c.BindJSON(&params); err != nil {
		logger.WithError(err).Error(errorInvalidParameters.Message)
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	// administrators are provisioned out of band
	if params.Role != schema.RoleDoctor && params.Role != schema.RolePatient {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	nu := store.NewUser{
		Email:    params.Email,
		Name:     params.Name,
		Password: params.Password,
		Role:     params.Role,
	}

	if params.Role == schema.RolePatient && params.DoctorID != "" {
		doctorID, err := uuid.Parse(params.DoctorID)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
			return
		}

		doctor, err := s.store.GetUser(doctorID)
		if err == store.ErrUserNotFound || (err == nil && !doctor.IsDoctor()) {
			abortWithEncoding(c, http.StatusBadRequest, errorUserNotFound)
			return
		} else if shouldInterupt(err, c) {
			return
		}
		nu.DoctorID = &doctorID
	}

	if params.Birthdate != "" {
		birthdate, err := time.Parse("2006-01-02", params.Birthdate)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
			return
		}
		nu.Birthdate = &birthdate
	}

	u, err := s.store.CreateUser(nu)
	if err == store.ErrUserExists {
		abortWithEncoding(c, http.StatusForbidden, errorUserTaken)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": u,
	})
}

// userDetail is the API to query the current user
func (s *Server) userDetail(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": user,
	})
}

// listPatients returns the patients of the current doctor
func (s *Server) listPatients(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	patients, err := s.store.ListPatients(user.ID)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": patients,
	})
}
