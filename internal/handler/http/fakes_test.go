package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-farm-twin/internal/logger"
	"github.com/MKhiriev/go-farm-twin/internal/service"
	"github.com/MKhiriev/go-farm-twin/internal/utils"
	"github.com/MKhiriev/go-farm-twin/models"
)

// ─────────────────────────────────────────────
// Fake services. A nil function field returns zero values.
// ─────────────────────────────────────────────

type fakeAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (f *fakeAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	if f.registerUserFn == nil {
		return user, nil
	}
	return f.registerUserFn(ctx, user)
}

func (f *fakeAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	if f.loginFn == nil {
		return user, nil
	}
	return f.loginFn(ctx, user)
}

func (f *fakeAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if f.createTokenFn == nil {
		return models.Token{SignedString: "signed", UserID: user.UserID}, nil
	}
	return f.createTokenFn(ctx, user)
}

func (f *fakeAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if f.parseTokenFn == nil {
		return models.Token{UserID: 1}, nil
	}
	return f.parseTokenFn(ctx, tokenString)
}

type fakeAppInfoService struct {
	version string
	date    string
	commit  string
}

func (f *fakeAppInfoService) GetAppVersion(context.Context) string {
	return f.version
}

func (f *fakeAppInfoService) GetBuildInfo(context.Context) models.AppBuildInfo {
	return models.NewAppBuildInfo(f.version, f.date, f.commit)
}

type fakeReadingService struct {
	submitFn func(ctx context.Context, owner int64, cts models.ReadingCiphertexts) (models.Reading, error)
	getFn    func(ctx context.Context, owner, readingID int64) (models.Reading, error)
}

func (f *fakeReadingService) SubmitReading(ctx context.Context, owner int64, cts models.ReadingCiphertexts) (models.Reading, error) {
	if f.submitFn == nil {
		return models.Reading{}, nil
	}
	return f.submitFn(ctx, owner, cts)
}

func (f *fakeReadingService) GetReading(ctx context.Context, owner, readingID int64) (models.Reading, error) {
	if f.getFn == nil {
		return models.Reading{}, nil
	}
	return f.getFn(ctx, owner, readingID)
}

type fakeTwinService struct {
	requestFn func(ctx context.Context, owner, twinID int64, readingIDs []int64) (models.RequestReceipt, error)
	getFn     func(ctx context.Context, twinID int64) (models.Twin, error)
}

func (f *fakeTwinService) RequestTwinUpdate(ctx context.Context, owner, twinID int64, readingIDs []int64) (models.RequestReceipt, error) {
	if f.requestFn == nil {
		return models.RequestReceipt{}, nil
	}
	return f.requestFn(ctx, owner, twinID, readingIDs)
}

func (f *fakeTwinService) GetTwin(ctx context.Context, twinID int64) (models.Twin, error) {
	if f.getFn == nil {
		return models.Twin{ID: twinID}, nil
	}
	return f.getFn(ctx, twinID)
}

type fakeRecommendationService struct {
	requestFn func(ctx context.Context, owner, twinID int64, readingIDs []int64) (models.RequestReceipt, error)
	getFn     func(ctx context.Context, twinID int64) (models.Recommendation, error)
}

func (f *fakeRecommendationService) RequestRecommendation(ctx context.Context, owner, twinID int64, readingIDs []int64) (models.RequestReceipt, error) {
	if f.requestFn == nil {
		return models.RequestReceipt{}, nil
	}
	return f.requestFn(ctx, owner, twinID, readingIDs)
}

func (f *fakeRecommendationService) GetRecommendation(ctx context.Context, twinID int64) (models.Recommendation, error) {
	if f.getFn == nil {
		return models.Recommendation{ID: twinID}, nil
	}
	return f.getFn(ctx, twinID)
}

type fakeAggregateService struct {
	addFn    func(ctx context.Context, owner int64, key string, delta []byte) (models.Aggregate, error)
	revealFn func(ctx context.Context, owner int64, key string) (models.RequestReceipt, error)
	findFn   func(ctx context.Context, keyHash int64) (string, error)
	keysFn   func(ctx context.Context) ([]string, error)
}

func (f *fakeAggregateService) AddToAggregate(ctx context.Context, owner int64, key string, delta []byte) (models.Aggregate, error) {
	if f.addFn == nil {
		return models.Aggregate{Key: key}, nil
	}
	return f.addFn(ctx, owner, key, delta)
}

func (f *fakeAggregateService) RequestAggregateReveal(ctx context.Context, owner int64, key string) (models.RequestReceipt, error) {
	if f.revealFn == nil {
		return models.RequestReceipt{}, nil
	}
	return f.revealFn(ctx, owner, key)
}

func (f *fakeAggregateService) FindKeyByHash(ctx context.Context, keyHash int64) (string, error) {
	if f.findFn == nil {
		return "", nil
	}
	return f.findFn(ctx, keyHash)
}

func (f *fakeAggregateService) Keys(ctx context.Context) ([]string, error) {
	if f.keysFn == nil {
		return nil, nil
	}
	return f.keysFn(ctx)
}

func (f *fakeAggregateService) GetAggregate(_ context.Context, key string) (models.Aggregate, error) {
	return models.Aggregate{Key: key}, nil
}

type fakeCallbackService struct {
	twinFn           func(ctx context.Context, cb models.DecryptionCallback) (models.Twin, error)
	recommendationFn func(ctx context.Context, cb models.DecryptionCallback) (models.Recommendation, error)
	aggregateFn      func(ctx context.Context, cb models.DecryptionCallback) (models.Event, error)
}

func (f *fakeCallbackService) HandleTwinCallback(ctx context.Context, cb models.DecryptionCallback) (models.Twin, error) {
	if f.twinFn == nil {
		return models.Twin{}, nil
	}
	return f.twinFn(ctx, cb)
}

func (f *fakeCallbackService) HandleRecommendationCallback(ctx context.Context, cb models.DecryptionCallback) (models.Recommendation, error) {
	if f.recommendationFn == nil {
		return models.Recommendation{}, nil
	}
	return f.recommendationFn(ctx, cb)
}

func (f *fakeCallbackService) HandleAggregateCallback(ctx context.Context, cb models.DecryptionCallback) (models.Event, error) {
	if f.aggregateFn == nil {
		return models.Event{}, nil
	}
	return f.aggregateFn(ctx, cb)
}

type fakeOracleFeedService struct {
	pendingFn    func(ctx context.Context, afterID int64, limit int) ([]models.PendingRequest, error)
	ciphertextFn func(ctx context.Context, handle models.Handle) ([]byte, error)
}

func (f *fakeOracleFeedService) PendingRequests(ctx context.Context, afterID int64, limit int) ([]models.PendingRequest, error) {
	if f.pendingFn == nil {
		return nil, nil
	}
	return f.pendingFn(ctx, afterID, limit)
}

func (f *fakeOracleFeedService) Ciphertext(ctx context.Context, handle models.Handle) ([]byte, error) {
	if f.ciphertextFn == nil {
		return nil, nil
	}
	return f.ciphertextFn(ctx, handle)
}

type fakeEventService struct {
	listFn func(ctx context.Context, afterSeq int64, limit int) ([]models.Event, error)
}

func (f *fakeEventService) List(ctx context.Context, afterSeq int64, limit int) ([]models.Event, error) {
	if f.listFn == nil {
		return nil, nil
	}
	return f.listFn(ctx, afterSeq, limit)
}

type fakeDataService struct {
	getFn    func(ctx context.Context, owner int64, key string) ([]byte, error)
	setFn    func(ctx context.Context, owner int64, key string, value []byte) error
	appendFn func(ctx context.Context, owner int64, rec models.RecordAppend) error
}

func (f *fakeDataService) GetData(ctx context.Context, owner int64, key string) ([]byte, error) {
	if f.getFn == nil {
		return nil, nil
	}
	return f.getFn(ctx, owner, key)
}

func (f *fakeDataService) SetData(ctx context.Context, owner int64, key string, value []byte) error {
	if f.setFn == nil {
		return nil
	}
	return f.setFn(ctx, owner, key, value)
}

func (f *fakeDataService) AppendRecord(ctx context.Context, owner int64, rec models.RecordAppend) error {
	if f.appendFn == nil {
		return nil
	}
	return f.appendFn(ctx, owner, rec)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newFakeServices returns a Services set where every service is a fake with
// default behavior. Tests replace the services they exercise.
func newFakeServices() *service.Services {
	return &service.Services{
		AuthService:           &fakeAuthService{},
		AppInfoService:        &fakeAppInfoService{version: "test-version"},
		ReadingService:        &fakeReadingService{},
		TwinService:           &fakeTwinService{},
		RecommendationService: &fakeRecommendationService{},
		AggregateService:      &fakeAggregateService{},
		CallbackService:       &fakeCallbackService{},
		OracleFeedService:     &fakeOracleFeedService{},
		EventService:          &fakeEventService{},
		DataService:           &fakeDataService{},
	}
}

// serve routes req through the full router with a bearer token, so the auth
// middleware resolves the caller to user 1 via the fake AuthService.
func serve(t *testing.T, svcs *service.Services, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer token")

	rec := httptest.NewRecorder()
	NewHandler(svcs, logger.Nop()).Init().ServeHTTP(rec, req)
	return rec
}

// withUser returns a request whose context already carries userID, for
// calling handler methods directly.
func withUser(req *http.Request, userID int64) *http.Request {
	return req.WithContext(utils.WithUserID(req.Context(), userID))
}

func bodyOf(rec *httptest.ResponseRecorder) string {
	return strings.TrimSpace(rec.Body.String())
}
