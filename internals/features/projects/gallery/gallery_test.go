package gallery

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRejectsEmptyGallery(t *testing.T) {
	for _, n := range []int{0, -3} {
		_, err := New(n)
		require.ErrorIs(t, err, ErrNoImages)
	}
}

func TestCardNavigationWraps(t *testing.T) {
	g, err := New(3)
	require.NoError(t, err)

	require.Equal(t, 1, g.NextImage())
	require.Equal(t, 2, g.NextImage())
	require.Equal(t, 0, g.NextImage(), "next past the last image wraps to the first")

	require.Equal(t, 2, g.PrevImage(), "prev before the first image wraps to the last")
}

func TestSingleImageGalleryStaysPut(t *testing.T) {
	g, err := New(1)
	require.NoError(t, err)

	require.Equal(t, 0, g.NextImage())
	require.Equal(t, 0, g.PrevImage())
}

func TestLightboxSeedsFromCardIndex(t *testing.T) {
	g, err := New(4)
	require.NoError(t, err)

	g.NextImage()
	g.NextImage() // card at 2
	g.OpenLightbox()
	require.True(t, g.LightboxOpen())
	require.Equal(t, 2, g.ModalIndex())
}

func TestLightboxIndexIsIndependent(t *testing.T) {
	g, err := New(4)
	require.NoError(t, err)

	g.NextImage() // card at 1
	g.OpenLightbox()
	g.NextModalImage()
	g.NextModalImage() // modal at 3

	require.Equal(t, 1, g.CardIndex(), "modal navigation must not move the card")
	require.Equal(t, 3, g.ModalIndex())

	g.CloseLightbox()
	require.Equal(t, 1, g.CardIndex(), "closing the lightbox must not move the card")
}

func TestModalNavigationIgnoredWhileClosed(t *testing.T) {
	g, err := New(3)
	require.NoError(t, err)

	require.Equal(t, 0, g.NextModalImage())
	require.Equal(t, 0, g.PrevModalImage())
	require.Equal(t, 0, g.JumpModalImage(2))
}

func TestJumpModalImage(t *testing.T) {
	g, err := New(3)
	require.NoError(t, err)
	g.OpenLightbox()

	require.Equal(t, 2, g.JumpModalImage(2))
	require.Equal(t, 1, g.JumpModalImage(4), "jump target is taken modulo the count")
	require.Equal(t, 2, g.JumpModalImage(-1), "negative targets wrap from the end")
}
