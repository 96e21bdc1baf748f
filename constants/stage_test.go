package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeExt(t *testing.T) {
	assert.Equal(t, "pdf", NormalizeExt(".PDF"))
	assert.Equal(t, "jpeg", NormalizeExt(".jpeg"))
	assert.Equal(t, "png", NormalizeExt("png"))
	assert.Equal(t, "", NormalizeExt(""))
}

func TestMapExtToFormat(t *testing.T) {
	assert.Equal(t, PDF, MapExtToFormat("pdf"))
	assert.Equal(t, IMAGE, MapExtToFormat("png"))
	assert.Equal(t, IMAGE, MapExtToFormat("tiff"))
	assert.Equal(t, "", MapExtToFormat("docx"))
	assert.Equal(t, "", MapExtToFormat(""))
}
