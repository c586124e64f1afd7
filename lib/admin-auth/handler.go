package adminauth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"recruitment-portal-backend/db"
	adminstore "recruitment-portal-backend/lib/admin-auth/store"
	authutils "recruitment-portal-backend/lib/utils/auth-utils"
	"recruitment-portal-backend/models"
	authapimodels "recruitment-portal-backend/models/api/auth"
	dbmodels "recruitment-portal-backend/models/db"
)

// ErrInvalidCredentials is the single error every auth failure collapses to.
// Callers must not distinguish a malformed token from a deactivated admin.
var ErrInvalidCredentials = errors.New("invalid or expired credentials")

type Provider interface {
	Login(email, password string) (response authapimodels.JWTResponse, err error)
	Authenticate(claims jwt.MapClaims) (*dbmodels.Admin, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: adminstore.NewInstance(db.DB),
	}
}

type impl struct {
	store adminstore.Provider
}

func (i impl) Login(email, password string) (authapimodels.JWTResponse, error) {
	logger := log.WithField("email", email)
	admin, err := i.store.FindActiveByEmail(email)
	if err != nil {
		logger.WithError(err).Error("failed to look up admin by email")
		return authapimodels.JWTResponse{}, err
	}
	if admin == nil {
		logger.Debug("no active admin with this email")
		return authapimodels.JWTResponse{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)) != nil {
		logger.Debug("password check failed")
		return authapimodels.JWTResponse{}, ErrInvalidCredentials
	}
	tokenString, err := authutils.GetToken(admin.Email)
	if err != nil {
		logger.WithError(err).Error("failed to sign JWT")
		return authapimodels.JWTResponse{}, err
	}
	err = i.store.Update(admin.ID, map[string]interface{}{"last_login": time.Now()})
	if err != nil {
		logger.WithError(err).Error("failed to update last login date")
	}
	return authapimodels.JWTResponse{
		Token: tokenString,
	}, nil
}

// Authenticate resolves verified token claims to an active admin account.
func (i impl) Authenticate(claims jwt.MapClaims) (*dbmodels.Admin, error) {
	email, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	if email == "" || role != string(models.UserRoleAdmin) {
		return nil, ErrInvalidCredentials
	}
	admin, err := i.store.FindActiveByEmail(email)
	if err != nil {
		log.WithError(err).Error("failed to look up admin by token subject")
		return nil, ErrInvalidCredentials
	}
	if admin == nil {
		return nil, ErrInvalidCredentials
	}
	return admin, nil
}
