package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetLocation(t *testing.T) {
	tz8 := GetLocation("GMT+8")
	assert.NotNil(t, tz8)
	assert.Equal(t, "GMT+8", tz8.String())

	tz1245 := GetLocation("GMT+12:45")
	assert.NotNil(t, tz1245)
	assert.Equal(t, "GMT+12:45", tz1245.String())

	tz945 := GetLocation("GMT+9:45")
	assert.NotNil(t, tz945)
	assert.Equal(t, "GMT+9:45", tz945.String())

	tz_8 := GetLocation("GMT-8")
	assert.NotNil(t, tz_8)
	assert.Equal(t, "GMT-8", tz_8.String())

	tz_1245 := GetLocation("GMT-12:45")
	assert.NotNil(t, tz_1245)
	assert.Equal(t, "GMT-12:45", tz_1245.String())

	tz_945 := GetLocation("GMT-9:45")
	assert.NotNil(t, tz_945)
	assert.Equal(t, "GMT-9:45", tz_945.String())
}

func TestGetLocationOffset(t *testing.T) {
	now := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	_, offset := now.In(GetLocation("gmt+8")).Zone()
	assert.Equal(t, 8*60*60, offset)

	_, offset = now.In(GetLocation("GMT-9:45")).Zone()
	assert.Equal(t, -(9*60*60 + 45*60), offset)
}

func TestGetLocationInvalid(t *testing.T) {
	assert.Nil(t, GetLocation(""))
	assert.Nil(t, GetLocation("UTC"))
	assert.Nil(t, GetLocation("GMT+15"))
	assert.Nil(t, GetLocation("GMT+8:75"))
	assert.Nil(t, GetLocation("Asia/Taipei"))
}
