package credential

import (
	"errors"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"

	"github.com/kbukum/blogkit/httpclient"
	"github.com/kbukum/blogkit/logger"
)

// expirySkew treats tokens that expire within this window as expired.
const expirySkew = 5 * time.Second

// Provider reads, writes and clears the auth token held in a Store.
// It implements httpclient.TokenSource.
type Provider struct {
	store Store
	log   *logger.Logger
	now   func() time.Time
}

// NewProvider wraps store. A nil logger uses the global logger.
func NewProvider(store Store, log *logger.Logger) *Provider {
	if log == nil {
		log = logger.GetGlobalLogger()
	}
	return &Provider{
		store: store,
		log:   log.WithComponent("credential"),
		now:   time.Now,
	}
}

// Token returns the stored token, or "" when none is stored. An expired JWT
// is deleted from the store and reported as absent.
func (p *Provider) Token() (string, error) {
	token, err := p.store.Get(KeyToken)
	if err != nil || token == "" {
		return "", err
	}
	if exp, ok := Expiry(token); ok && !p.now().Add(expirySkew).Before(exp) {
		p.log.Info("stored token expired, clearing", logger.Fields("expired_at", exp.Format(time.RFC3339)))
		if err := p.store.Delete(KeyToken); err != nil {
			return "", err
		}
		return "", nil
	}
	return token, nil
}

// Save stores token, replacing any previous one. An empty token clears it.
func (p *Provider) Save(token string) error {
	if token == "" {
		return p.Clear()
	}
	return p.store.Set(KeyToken, token)
}

// Clear removes the stored token.
func (p *Provider) Clear() error {
	return p.store.Delete(KeyToken)
}

// Expiry reports the exp claim of a JWT. The signature is not verified;
// the backend remains the authority on validity. ok is false for tokens
// that are not JWTs or carry no exp claim.
func Expiry(token string) (exp time.Time, ok bool) {
	claims := gojwt.RegisteredClaims{}
	if _, _, err := gojwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// ErrNoToken is returned by RequireToken when no usable token is stored.
var ErrNoToken = errors.New("credential: not logged in")

// RequireToken returns the current token or ErrNoToken.
func (p *Provider) RequireToken() (string, error) {
	token, err := p.Token()
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

var _ httpclient.TokenSource = (*Provider)(nil)
