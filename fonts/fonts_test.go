package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/font/basicfont"
)

func TestHUDDefaultsToBitmapFace(t *testing.T) {
	assert.Equal(t, basicfont.Face7x13, HUD.Get())
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	assert.Error(t, LoadFont("junk", []byte("not a font")))
	assert.Panics(t, func() { FontName("junk").Get() })
}

func TestLoadFontFileMissing(t *testing.T) {
	assert.Error(t, LoadFontFile(HUD, "testdata/none.ttf", 12))
	assert.Equal(t, basicfont.Face7x13, HUD.Get())
}
