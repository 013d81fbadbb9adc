package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductImageKey(t *testing.T) {
	assert.Equal(t, "products/p1.png", productImageKey("p1", "photo.png"))
	assert.Equal(t, "products/p1.jpg", productImageKey("p1", "photo.jpg"))

	// sans extension : jpg, comme les objets déposés par le seed
	assert.Equal(t, "products/s24 snap.jpg", productImageKey("s24 snap", ""))
	assert.Equal(t, "products/p1.jpg", productImageKey("p1", "photo"))
}

func TestPublicImageURL(t *testing.T) {
	t.Setenv("MINIO_ENDPOINT", "localhost:9000")
	t.Setenv("MINIO_BUCKET", "mycart-images")

	assert.Equal(t,
		"http://localhost:9000/mycart-images/products/p1.jpg",
		publicImageURL("products/p1.jpg"))
}
