package rest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/fharpR4/roomie-app/internal/domain"
	"github.com/fharpR4/roomie-app/internal/ports"
)

type authUser struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	UserMetadata struct {
		FullName string `json:"full_name"`
		Phone    string `json:"phone"`
	} `json:"user_metadata"`
}

type tokenResponse struct {
	AccessToken string   `json:"access_token"`
	User        authUser `json:"user"`
}

// SignUp creates the auth user and its profile row. The returned session may
// carry an empty token when the backend requires verification first; the
// profile snapshot is populated either way.
func (c *Client) SignUp(ctx context.Context, req ports.SignUpRequest) (domain.Session, error) {
	var resp tokenResponse
	err := c.doJSON(ctx, request{
		op:     "sign up",
		method: http.MethodPost,
		path:   "/auth/v1/signup",
		body: map[string]any{
			"email":    req.Email,
			"password": req.Password,
			"data": map[string]any{
				"full_name": req.FullName,
				"phone":     req.Phone,
			},
		},
	}, &resp)
	if err != nil {
		return domain.Session{}, err
	}

	profile := domain.Profile{
		ID:          domain.ProfileID(resp.User.ID),
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		Institution: req.Institution,
	}

	err = c.doJSON(ctx, request{
		op:     "profile create",
		method: http.MethodPost,
		path:   "/rest/v1/profiles",
		body: []any{map[string]any{
			"id":          resp.User.ID,
			"full_name":   req.FullName,
			"email":       req.Email,
			"phone":       req.Phone,
			"institution": req.Institution,
			"verified":    false,
		}},
	}, nil)
	if err != nil {
		return domain.Session{}, err
	}

	return domain.Session{Token: resp.AccessToken, Profile: profile}, nil
}

func (c *Client) SignIn(ctx context.Context, creds ports.Credentials) (domain.Session, error) {
	var resp tokenResponse
	err := c.doJSON(ctx, request{
		op:     "sign in",
		method: http.MethodPost,
		path:   "/auth/v1/token",
		query:  url.Values{"grant_type": {"password"}},
		body: map[string]any{
			"email":    creds.Email,
			"password": creds.Password,
		},
	}, &resp)
	if err != nil {
		return domain.Session{}, err
	}

	return c.sessionFor(ctx, resp)
}

// SignOut revokes the token server-side. Local state is the caller's
// concern; the UI never waits on this call.
func (c *Client) SignOut(ctx context.Context, token string) error {
	return c.doJSON(ctx, request{
		op:      "sign out",
		method:  http.MethodPost,
		path:    "/auth/v1/logout",
		headers: map[string]string{"Authorization": "Bearer " + token},
	}, nil)
}

// FetchSession resolves the profile behind a token.
func (c *Client) FetchSession(ctx context.Context, token string) (domain.Profile, error) {
	var user authUser
	err := c.doJSON(ctx, request{
		op:      "session fetch",
		method:  http.MethodGet,
		path:    "/auth/v1/user",
		headers: map[string]string{"Authorization": "Bearer " + token},
	}, &user)
	if err != nil {
		return domain.Profile{}, err
	}

	profile, err := c.GetProfile(ctx, domain.ProfileID(user.ID))
	if err != nil {
		return domain.Profile{}, err
	}
	return profile, nil
}

func (c *Client) VerifyOTP(ctx context.Context, email, code string) (domain.Session, error) {
	var resp tokenResponse
	err := c.doJSON(ctx, request{
		op:     "account verification",
		method: http.MethodPost,
		path:   "/auth/v1/verify",
		body: map[string]any{
			"email": email,
			"token": code,
			"type":  "email",
		},
	}, &resp)
	if err != nil {
		return domain.Session{}, err
	}

	return c.sessionFor(ctx, resp)
}

// sessionFor builds the session snapshot, preferring the profile row and
// falling back to auth metadata when the row cannot be fetched.
func (c *Client) sessionFor(ctx context.Context, resp tokenResponse) (domain.Session, error) {
	session := domain.Session{
		Token: resp.AccessToken,
		Profile: domain.Profile{
			ID:       domain.ProfileID(resp.User.ID),
			FullName: resp.User.UserMetadata.FullName,
			Email:    resp.User.Email,
			Phone:    resp.User.UserMetadata.Phone,
		},
	}

	profile, err := c.GetProfile(ctx, session.Profile.ID)
	if err != nil {
		c.Logger.Warn("profile snapshot fallback to auth metadata", "error", err)
		return session, nil
	}

	session.Profile = profile
	return session, nil
}
