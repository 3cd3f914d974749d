package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"todoapi/internal/core/util"
)

func TestGenerateEncryptAndCompare(t *testing.T) {
	encrypted, err := util.GenerateEncrypt("password123")

	assert.NoError(t, err)
	assert.NotEqual(t, "password123", encrypted)

	assert.NoError(t, util.ComparePassword("password123", encrypted))
}

func TestComparePasswordMismatch(t *testing.T) {
	encrypted, err := util.GenerateEncrypt("password123")
	assert.NoError(t, err)

	assert.Error(t, util.ComparePassword("wrong-password", encrypted))
}

func TestGenerateEncryptProducesFreshSalt(t *testing.T) {
	first, err := util.GenerateEncrypt("password123")
	assert.NoError(t, err)

	second, err := util.GenerateEncrypt("password123")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}
