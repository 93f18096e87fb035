package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateLinkQR(t *testing.T) {
	png, err := GenerateLinkQR("https://stake.com/?c=GambleCodez", 256)
	assert.NoError(t, err)
	assert.NotEmpty(t, png)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}
