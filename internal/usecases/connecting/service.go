package connecting

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/qixdigital/ad-intelligence-api/infrastructure/integrator/meta"
	"github.com/qixdigital/ad-intelligence-api/infrastructure/integrator/meta/metaclient"
	"github.com/qixdigital/ad-intelligence-api/infrastructure/repository"
	"github.com/qixdigital/ad-intelligence-api/internal/config"
	"github.com/qixdigital/ad-intelligence-api/internal/domain"
	"github.com/qixdigital/ad-intelligence-api/pkg/apiErrors"
	"github.com/qixdigital/ad-intelligence-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// stateTTL é a validade de um state de autorização emitido e ainda não usado.
const stateTTL = 10 * time.Minute

var oauthScopes = []string{"ads_read", "business_management"}

type Connector interface {
	AuthorizationURL(userID string) (string, error)
	HandleCallback(userID, code, state string) (*domain.PlatformToken, error)
	GetValidToken(userID string, platform domain.Platform) (*domain.PlatformToken, error)
	ListRemoteAdAccounts(userID string) ([]*domain.RemoteAdAccount, error)
	LinkAdAccount(req *domain.LinkAdAccountRequest) (*domain.AdAccount, error)
	ListAccountsByClientID(clientID string) ([]*domain.AdAccount, error)
}

type Service struct {
	cfg         *config.Config
	client      metaclient.Client
	integrator  *meta.MetaIntegrator
	tokenRepo   repository.PlatformTokenRepository
	accountRepo repository.AdAccountRepository

	// states guarda os nonces emitidos e ainda não consumidos.
	statesMu sync.Mutex
	states   map[string]time.Time

	// refreshMu serializa a renovação de token por par (userID, platform),
	// para que requisições concorrentes não disparem duas trocas na plataforma.
	refreshMu    sync.Mutex
	refreshLocks map[string]*sync.Mutex
}

func NewService(
	cfg *config.Config,
	client metaclient.Client,
	integrator *meta.MetaIntegrator,
	tokenRepo repository.PlatformTokenRepository,
	accountRepo repository.AdAccountRepository,
) Connector {
	return &Service{
		cfg:          cfg,
		client:       client,
		integrator:   integrator,
		tokenRepo:    tokenRepo,
		accountRepo:  accountRepo,
		states:       make(map[string]time.Time),
		refreshLocks: make(map[string]*sync.Mutex),
	}
}

// AuthorizationURL monta a URL de consentimento da plataforma com um state
// novo. O state é de uso único e expira sem ser consumido após stateTTL.
func (s *Service) AuthorizationURL(userID string) (string, error) {
	state, err := s.mintState()
	if err != nil {
		return "", err
	}

	logrus.WithField("user_id", userID).Debug("connect: authorization url issued")

	return s.client.AuthorizationURL(s.cfg.Meta.RedirectURI, state, oauthScopes), nil
}

// HandleCallback valida o state, troca o código por um token de acesso e o
// armazena. Falha na troca é devolvida ao chamador: nunca se grava token nulo.
func (s *Service) HandleCallback(userID, code, state string) (*domain.PlatformToken, error) {
	if code == "" {
		return nil, NewConnectError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, userID, "code é obrigatório")
	}

	if !s.consumeState(state) {
		return nil, NewConnectError(ErrInvalidState, apiErrors.ErrInvalidOAuthState, userID, "")
	}

	tokenResp, err := s.client.ExchangeCode(code, s.cfg.Meta.RedirectURI)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": userID,
			"error":   err.Error(),
		}).Error("connect: failed to exchange authorization code")
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	token := &domain.PlatformToken{
		ID:          id,
		UserID:      userID,
		Platform:    domain.PlatformMeta,
		AccessToken: tokenResp.AccessToken,
		ExpiresAt:   expiryFrom(tokenResp.ExpiresIn),
	}

	if err := s.tokenRepo.SaveOrUpdate(token); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id":  userID,
		"platform": token.Platform,
	}).Info("connect: platform token stored")

	return token, nil
}

// GetValidToken devolve o token armazenado do usuário, renovando-o antes da
// expiração quando a janela de renovação foi alcançada. Token já expirado não
// é renovável pela troca de longa duração: o usuário precisa reconectar.
func (s *Service) GetValidToken(userID string, platform domain.Platform) (*domain.PlatformToken, error) {
	lock := s.lockFor(userID, platform)
	lock.Lock()
	defer lock.Unlock()

	token, err := s.tokenRepo.GetByUserAndPlatform(userID, platform)
	if err != nil {
		return nil, err
	}

	if token == nil {
		return nil, NewConnectError(ErrTokenNotFound, apiErrors.ErrPlatformTokenExpired, userID, "")
	}

	switch token.State(time.Now()) {
	case domain.TokenStateExpired:
		return nil, NewConnectError(ErrTokenExpired, apiErrors.ErrPlatformTokenExpired, userID, "")
	case domain.TokenStateExpiringSoon:
		return s.refreshToken(token), nil
	}

	return token, nil
}

// refreshToken tenta a troca de longa duração. Se a plataforma recusar, o
// token atual ainda é válido e continua sendo usado.
func (s *Service) refreshToken(token *domain.PlatformToken) *domain.PlatformToken {
	tokenResp, err := s.client.ExtendToken(token.AccessToken)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": token.UserID,
			"error":   err.Error(),
		}).Warn("connect: failed to extend token, keeping current one")
		return token
	}

	token.AccessToken = tokenResp.AccessToken
	token.ExpiresAt = expiryFrom(tokenResp.ExpiresIn)

	if err := s.tokenRepo.SaveOrUpdate(token); err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": token.UserID,
			"error":   err.Error(),
		}).Warn("connect: failed to persist extended token")
	} else {
		logrus.WithField("user_id", token.UserID).Info("connect: platform token extended")
	}

	return token
}

func (s *Service) ListRemoteAdAccounts(userID string) ([]*domain.RemoteAdAccount, error) {
	token, err := s.GetValidToken(userID, domain.PlatformMeta)
	if err != nil {
		return nil, err
	}

	return s.integrator.ListRemoteAdAccounts(token.AccessToken)
}

// LinkAdAccount vincula uma conta externa a um cliente. Vincular duas vezes a
// mesma conta apenas atualiza o vínculo existente.
func (s *Service) LinkAdAccount(req *domain.LinkAdAccountRequest) (*domain.AdAccount, error) {
	if req.ClientID == "" || req.ExternalID == "" {
		return nil, NewConnectError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "", "client_id e external_id são obrigatórios")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	platform := req.Platform
	if platform == "" {
		platform = domain.PlatformMeta
	}

	account := &domain.AdAccount{
		ID:         id,
		ClientID:   req.ClientID,
		Platform:   platform,
		ExternalID: req.ExternalID,
		Name:       req.Name,
		Status:     domain.AdAccountStatusActive,
	}

	if err := s.accountRepo.Save(account); err != nil {
		return nil, err
	}

	return account, nil
}

func (s *Service) ListAccountsByClientID(clientID string) ([]*domain.AdAccount, error) {
	return s.accountRepo.ListAccountsByClientID(clientID)
}

func (s *Service) mintState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	state := hex.EncodeToString(buf)

	s.statesMu.Lock()
	defer s.statesMu.Unlock()

	// Limpa states abandonados para o mapa não crescer sem limite.
	now := time.Now()
	for k, issuedAt := range s.states {
		if now.Sub(issuedAt) > stateTTL {
			delete(s.states, k)
		}
	}

	s.states[state] = now

	return state, nil
}

func (s *Service) consumeState(state string) bool {
	if state == "" {
		return false
	}

	s.statesMu.Lock()
	defer s.statesMu.Unlock()

	issuedAt, exists := s.states[state]
	if !exists {
		return false
	}

	delete(s.states, state)

	return time.Since(issuedAt) <= stateTTL
}

func (s *Service) lockFor(userID string, platform domain.Platform) *sync.Mutex {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	key := fmt.Sprintf("%s:%s", userID, platform)

	lock, exists := s.refreshLocks[key]
	if !exists {
		lock = &sync.Mutex{}
		s.refreshLocks[key] = lock
	}

	return lock
}

func expiryFrom(expiresIn int64) *time.Time {
	if expiresIn <= 0 {
		return nil
	}

	expiresAt := time.Now().Add(time.Duration(expiresIn) * time.Second)

	return &expiresAt
}
