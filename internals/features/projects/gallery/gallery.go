// Package gallery models the project image carousel and its lightbox.
// A card cycles through its images modulo the image count; opening the
// lightbox forks an independent modal index so neither side mutates the
// other.
package gallery

import "errors"

var ErrNoImages = errors.New("gallery: image count must be positive")

type Gallery struct {
	count      int
	cardIndex  int
	modalIndex int
	open       bool
}

// New builds a gallery over n images, starting at index 0.
func New(n int) (*Gallery, error) {
	if n <= 0 {
		return nil, ErrNoImages
	}
	return &Gallery{count: n}, nil
}

func (g *Gallery) Count() int { return g.count }

// CardIndex is the per-card current image index.
func (g *Gallery) CardIndex() int { return g.cardIndex }

// NextImage advances the card index, wrapping past the last image.
func (g *Gallery) NextImage() int {
	g.cardIndex = (g.cardIndex + 1) % g.count
	return g.cardIndex
}

// PrevImage steps the card index back, wrapping before the first image.
func (g *Gallery) PrevImage() int {
	g.cardIndex = (g.cardIndex - 1 + g.count) % g.count
	return g.cardIndex
}

// OpenLightbox opens the modal seeded at the card's current image.
// The card index is copied, not shared.
func (g *Gallery) OpenLightbox() {
	g.modalIndex = g.cardIndex
	g.open = true
}

// CloseLightbox closes the modal. The card index is untouched.
func (g *Gallery) CloseLightbox() {
	g.open = false
}

func (g *Gallery) LightboxOpen() bool { return g.open }

// ModalIndex is the lightbox's own image index; only meaningful while open.
func (g *Gallery) ModalIndex() int { return g.modalIndex }

func (g *Gallery) NextModalImage() int {
	if !g.open {
		return g.modalIndex
	}
	g.modalIndex = (g.modalIndex + 1) % g.count
	return g.modalIndex
}

func (g *Gallery) PrevModalImage() int {
	if !g.open {
		return g.modalIndex
	}
	g.modalIndex = (g.modalIndex - 1 + g.count) % g.count
	return g.modalIndex
}

// JumpModalImage jumps the lightbox straight to image i, modulo the count.
func (g *Gallery) JumpModalImage(i int) int {
	if !g.open {
		return g.modalIndex
	}
	g.modalIndex = ((i % g.count) + g.count) % g.count
	return g.modalIndex
}
