package http

import "inventory-management/internal/auth"

// --- Request DTOs ---

type signInReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r signInReq) toInput() auth.SignInInput {
	return auth.SignInInput{
		Username: r.Username,
		Password: r.Password,
	}
}

// --- Response DTOs ---

type userResp struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type signInResp struct {
	AccessToken string   `json:"accessToken"`
	User        userResp `json:"user"`
}

func (h *handler) newSignInResp(out auth.SignInOutput) signInResp {
	return signInResp{
		AccessToken: out.AccessToken,
		User: userResp{
			ID:       out.User.ID,
			Username: out.User.Username,
			Role:     out.User.Role,
		},
	}
}
