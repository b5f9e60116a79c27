package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/MKhiriev/go-farm-twin/internal/attestation"
	"github.com/MKhiriev/go-farm-twin/internal/config"
	"github.com/MKhiriev/go-farm-twin/internal/mock"
	"github.com/MKhiriev/go-farm-twin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// tableDecryptor "decrypts" a ciphertext by looking its bytes up.
type tableDecryptor map[string]uint64

func (d tableDecryptor) Decrypt(raw []byte) (uint64, error) {
	v, ok := d[string(raw)]
	if !ok {
		return 0, errors.New("unknown ciphertext")
	}
	return v, nil
}

func newTestOracle(t *testing.T, ctrl *gomock.Controller, dec Decryptor, cfg config.Workers) (OracleService, *mock.MockOracleAdapter, *attestation.Verifier) {
	t.Helper()
	pub, priv, err := attestation.GenerateKey()
	require.NoError(t, err)

	mockAdapter := mock.NewMockOracleAdapter(ctrl)
	svc := NewOracleService(mockAdapter, dec, attestation.NewSigner(priv, "oracle-test"), cfg)

	return svc, mockAdapter, attestation.NewVerifier(pub, "oracle-test")
}

func TestOracleService_TwinUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dec := tableDecryptor{"fp": 1234, "health": 255}
	svc, mockAdapter, verifier := newTestOracle(t, ctrl, dec, config.Workers{})
	ctx := context.Background()

	req := models.PendingRequest{
		ID:           11,
		EntityID:     1,
		Kind:         models.KindTwinUpdate,
		Handles:      []models.Handle{"h-fp", "h-health"},
		ReadingCount: 3,
	}

	mockAdapter.EXPECT().PendingRequests(ctx, int64(0), defaultOracleBatchSize).Return([]models.PendingRequest{req}, nil)
	mockAdapter.EXPECT().Ciphertext(ctx, models.Handle("h-fp")).Return([]byte("fp"), nil)
	mockAdapter.EXPECT().Ciphertext(ctx, models.Handle("h-health")).Return([]byte("health"), nil)
	mockAdapter.EXPECT().Callback(ctx, models.KindTwinUpdate, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ models.RequestKind, cb models.DecryptionCallback) error {
			assert.Equal(t, int64(11), cb.RequestID)

			var fields []string
			require.NoError(t, json.Unmarshal(cb.Cleartexts, &fields))
			assert.Equal(t, []string{"Healthy,85% moisture", "85"}, fields)

			assert.NoError(t, verifier.Verify(cb.RequestID, cb.Cleartexts, cb.Proof))
			return nil
		},
	)

	n, err := svc.ProcessBatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestOracleService_AggregateAndRecommendation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dec := tableDecryptor{"total": 90, "soil": 40, "co2": 2000, "light": 45000}
	svc, mockAdapter, _ := newTestOracle(t, ctrl, dec, config.Workers{BatchSize: 10})
	ctx := context.Background()

	requests := []models.PendingRequest{
		{ID: 1, EntityID: 99, Kind: models.KindAggregate, Handles: []models.Handle{"total"}},
		{ID: 2, EntityID: 5, Kind: models.KindRecommendation, Handles: []models.Handle{"soil", "co2", "light"}, ReadingCount: 2},
	}

	mockAdapter.EXPECT().PendingRequests(ctx, int64(0), 10).Return(requests, nil)
	mockAdapter.EXPECT().Ciphertext(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, h models.Handle) ([]byte, error) { return []byte(h), nil },
	).Times(4)

	var delivered []models.DecryptionCallback
	mockAdapter.EXPECT().Callback(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ models.RequestKind, cb models.DecryptionCallback) error {
			delivered = append(delivered, cb)
			return nil
		},
	).Times(2)

	n, err := svc.ProcessBatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.Len(t, delivered, 2)

	assert.JSONEq(t, `["90"]`, string(delivered[0].Cleartexts))

	var advice []string
	require.NoError(t, json.Unmarshal(delivered[1].Cleartexts, &advice))
	require.Len(t, advice, 3)
	assert.Contains(t, advice[0], "Increase watering")
	assert.Contains(t, advice[1], "Nutrients sufficient")
	assert.Contains(t, advice[2], "Light adequate")
}

func TestOracleService_GivesUpAfterMaxAttempts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestOracle(t, ctrl, tableDecryptor{}, config.Workers{MaxAttempts: 2})
	ctx := context.Background()

	req := models.PendingRequest{ID: 3, EntityID: 1, Kind: models.KindAggregate, Handles: []models.Handle{"gone"}}

	mockAdapter.EXPECT().PendingRequests(ctx, gomock.Any(), gomock.Any()).Return([]models.PendingRequest{req}, nil).Times(3)
	mockAdapter.EXPECT().Ciphertext(ctx, models.Handle("gone")).Return(nil, errors.New("not found")).Times(2)

	for range 3 {
		n, err := svc.ProcessBatch(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
	}
}

func TestOracleService_FailedRequestsDoNotBlockNewerOnes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dec := tableDecryptor{"ok": 7}
	svc, mockAdapter, _ := newTestOracle(t, ctrl, dec, config.Workers{BatchSize: 3, MaxAttempts: 1})
	ctx := context.Background()

	queue := []models.PendingRequest{
		{ID: 1, Kind: models.KindAggregate, Handles: []models.Handle{"broken"}},
		{ID: 2, Kind: models.KindAggregate, Handles: []models.Handle{"broken"}},
		{ID: 3, Kind: models.KindAggregate, Handles: []models.Handle{"broken"}},
		{ID: 4, Kind: models.KindAggregate, Handles: []models.Handle{"ok"}},
	}

	var cursors []int64
	mockAdapter.EXPECT().PendingRequests(ctx, gomock.Any(), 3).DoAndReturn(
		func(_ context.Context, afterID int64, limit int) ([]models.PendingRequest, error) {
			cursors = append(cursors, afterID)
			var page []models.PendingRequest
			for _, req := range queue {
				if req.ID > afterID && len(page) < limit {
					page = append(page, req)
				}
			}
			return page, nil
		},
	).Times(3)
	mockAdapter.EXPECT().Ciphertext(ctx, models.Handle("broken")).Return(nil, errors.New("not found")).Times(3)
	mockAdapter.EXPECT().Ciphertext(ctx, models.Handle("ok")).Return([]byte("ok"), nil)

	var delivered []int64
	mockAdapter.EXPECT().Callback(ctx, models.KindAggregate, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ models.RequestKind, cb models.DecryptionCallback) error {
			delivered = append(delivered, cb.RequestID)
			queue = queue[:3]
			return nil
		},
	)

	for range 3 {
		_, err := svc.ProcessBatch(ctx)
		require.NoError(t, err)
	}

	assert.Equal(t, []int64{4}, delivered)
	assert.Equal(t, []int64{0, 3, 0}, cursors, "the second batch starts past the failed requests, the third wraps")
}

func TestOracleService_PendingRequestsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestOracle(t, ctrl, tableDecryptor{}, config.Workers{})

	mockAdapter.EXPECT().PendingRequests(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("offline"))

	_, err := svc.ProcessBatch(context.Background())
	assert.Error(t, err)
}

func TestBuildCleartexts(t *testing.T) {
	tests := []struct {
		name    string
		req     models.PendingRequest
		values  []uint64
		want    []string
		wantErr error
	}{
		{
			name:   "dry twin",
			req:    models.PendingRequest{Kind: models.KindTwinUpdate, ReadingCount: 2},
			values: []uint64{0, 40},
			want:   []string{"Dry,20% moisture", "20"},
		},
		{
			name:   "moderate twin",
			req:    models.PendingRequest{Kind: models.KindTwinUpdate, ReadingCount: 1},
			values: []uint64{0, 30},
			want:   []string{"Moderate,30% moisture", "30"},
		},
		{
			name:    "twin with one handle",
			req:     models.PendingRequest{Kind: models.KindTwinUpdate, ReadingCount: 1},
			values:  []uint64{1},
			wantErr: ErrMissingHandles,
		},
		{
			name:    "unknown kind",
			req:     models.PendingRequest{Kind: "weather"},
			values:  []uint64{1},
			wantErr: ErrUnsupportedRequestKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := buildCleartexts(tt.req, tt.values)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
