package store

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-farm-twin/internal/utils"
	"github.com/MKhiriev/go-farm-twin/models"
)

type fakeS3 struct {
	objects map[string][]byte
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)] = data
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	data, ok := f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func TestCiphertextStorages(t *testing.T) {
	files, err := NewFileCiphertextStorage(t.TempDir())
	require.NoError(t, err)

	storages := map[string]CiphertextStorage{
		"state": NewStateCiphertextStorage(NewMemoryState()),
		"files": files,
		"s3":    NewS3CiphertextStorage(&fakeS3{objects: map[string][]byte{}}, "farm"),
	}

	for name, s := range storages {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			data := []byte("ciphertext bytes")

			h1, err := s.Put(ctx, data)
			require.NoError(t, err)
			h2, err := s.Put(ctx, data)
			require.NoError(t, err)
			assert.Equal(t, h1, h2, "handles are content addressed")
			assert.Equal(t, utils.ContentHandle(data), h1)

			got, err := s.Get(ctx, h1)
			require.NoError(t, err)
			assert.Equal(t, data, got)

			_, err = s.Get(ctx, utils.ContentHandle([]byte("other")))
			assert.ErrorIs(t, err, ErrCiphertextNotFound)
		})
	}
}

func TestFileCiphertexts_RejectsBadHandles(t *testing.T) {
	s, err := NewFileCiphertextStorage(t.TempDir())
	require.NoError(t, err)

	_, err = s.Get(context.Background(), models.Handle("../../etc/passwd"))
	assert.ErrorIs(t, err, ErrInvalidHandle)
}

func TestDBCiphertexts(t *testing.T) {
	ctx := context.Background()
	db, mock := newMockDB(t)
	s := NewDBCiphertextStorage(db)
	data := []byte{1, 2, 3}
	handle := utils.ContentHandle(data)

	mock.ExpectExec(`INSERT INTO ciphertexts \(handle,data\) VALUES \(\$1,\$2\) ON CONFLICT DO NOTHING`).
		WithArgs(handle.String(), data).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT data FROM ciphertexts WHERE handle = \$1`).
		WithArgs(handle.String()).
		WillReturnRows(sqlmock.NewRows([]string{"data"}).AddRow(data))
	mock.ExpectQuery(`SELECT data FROM ciphertexts`).
		WillReturnRows(sqlmock.NewRows([]string{"data"}))

	got, err := s.Put(ctx, data)
	require.NoError(t, err)
	assert.Equal(t, handle, got)

	raw, err := s.Get(ctx, handle)
	require.NoError(t, err)
	assert.Equal(t, data, raw)

	_, err = s.Get(ctx, "0000")
	assert.ErrorIs(t, err, ErrCiphertextNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
