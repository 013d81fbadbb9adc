package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/url"
	"os"
	"path"
	"time"

	"github.com/minio/minio-go/v7"

	"mycart_back_end/internal/database"
)

//
// --- IMAGES PRODUITS (MinIO) ---
//

func bucketName() string {
	return os.Getenv("MINIO_BUCKET")
}

// productImageKey construit le chemin objet d'une image produit, en gardant
// l'extension du fichier déposé (jpg par défaut).
func productImageKey(productID, filename string) string {
	ext := path.Ext(filename)
	if ext == "" {
		ext = ".jpg"
	}
	return "products/" + productID + ext
}

// publicImageURL retourne l'URL directe de l'objet, pour un bucket en
// lecture publique.
func publicImageURL(key string) string {
	return fmt.Sprintf("http://%s/%s/%s", os.Getenv("MINIO_ENDPOINT"), bucketName(), key)
}

// UploadProductImage pousse l'image dans le bucket et retourne son URL.
func UploadProductImage(ctx context.Context, productID string, file *multipart.FileHeader) (string, error) {
	if database.MinIO == nil {
		return "", fmt.Errorf("MinIO non initialisé")
	}

	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	key := productImageKey(productID, file.Filename)
	_, err = database.MinIO.PutObject(ctx, bucketName(), key, f, file.Size,
		minio.PutObjectOptions{ContentType: file.Header.Get("Content-Type")})
	if err != nil {
		return "", err
	}

	return publicImageURL(key), nil
}

// SignedProductImageURL génère une URL signée à durée limitée vers une image
// déposée hors application (seed), nommée d'après le produit.
func SignedProductImageURL(ctx context.Context, name string, duration time.Duration) (string, error) {
	if database.MinIO == nil {
		return "", fmt.Errorf("MinIO non initialisé")
	}

	presigned, err := database.MinIO.PresignedGetObject(ctx, bucketName(),
		productImageKey(name, ""), duration, url.Values{})
	if err != nil {
		return "", err
	}
	return presigned.String(), nil
}
