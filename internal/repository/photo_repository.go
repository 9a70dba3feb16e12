package repository

import (
	"io"
	"mime/multipart"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
)

// PhotoRepository stores image blobs in Mongo GridFS. Filenames carry a
// per-entity-kind prefix ("properties/", "property_requests/") so blobs of
// the two kinds stay distinguishable in the bucket.
type PhotoRepository struct {
	DB *mongo.Database
}

func NewPhotoRepository(client *mongo.Client, dbName string) *PhotoRepository {
	return &PhotoRepository{DB: client.Database(dbName)}
}

func (r *PhotoRepository) Upload(file multipart.File, filename string) (string, error) {
	bucket, err := gridfs.NewBucket(r.DB)
	if err != nil {
		return "", err
	}

	stream, err := bucket.OpenUploadStream(filename)
	if err != nil {
		return "", err
	}
	defer stream.Close()

	if _, err := io.Copy(stream, file); err != nil {
		return "", err
	}

	return stream.FileID.(primitive.ObjectID).Hex(), nil
}

func (r *PhotoRepository) Download(fileID string) ([]byte, error) {
	bucket, err := gridfs.NewBucket(r.DB)
	if err != nil {
		return nil, err
	}

	objID, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return nil, err
	}

	stream, err := bucket.OpenDownloadStream(objID)
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	return io.ReadAll(stream)
}
