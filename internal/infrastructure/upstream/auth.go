package upstream

import (
	"context"
	"net/http"

	"github.com/spc-hr/hrms-gateway/internal/core/domain"
	"github.com/spc-hr/hrms-gateway/internal/core/ports"
)

type loginRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	CompanyID string `json:"companyId,omitempty"`
}

type registerRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	CompanyName string `json:"companyName,omitempty"`
	Role        string `json:"role,omitempty"`
}

type googleRequest struct {
	Credential string `json:"credential"`
}

type authPayload struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

func (p authPayload) toResult() *ports.AuthResult {
	return &ports.AuthResult{Token: p.Token, User: p.User}
}

// Login calls POST /auth/login.
func (c *Client) Login(ctx context.Context, creds ports.Credentials) (*ports.AuthResult, error) {
	var payload authPayload
	err := c.do(ctx, http.MethodPost, "/auth/login", loginRequest{
		Email:     creds.Email,
		Password:  creds.Password,
		CompanyID: creds.CompanyID,
	}, &payload)
	if err != nil {
		return nil, err
	}
	return payload.toResult(), nil
}

// Register calls POST /auth/register.
func (c *Client) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	var payload authPayload
	err := c.do(ctx, http.MethodPost, "/auth/register", registerRequest{
		Email:       in.Email,
		Password:    in.Password,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		CompanyName: in.CompanyName,
		Role:        in.Role,
	}, &payload)
	if err != nil {
		return nil, err
	}
	return payload.toResult(), nil
}

// GoogleLogin calls POST /auth/google with the federated credential.
func (c *Client) GoogleLogin(ctx context.Context, credential string) (*ports.AuthResult, error) {
	var payload authPayload
	if err := c.do(ctx, http.MethodPost, "/auth/google", googleRequest{Credential: credential}, &payload); err != nil {
		return nil, err
	}
	return payload.toResult(), nil
}
