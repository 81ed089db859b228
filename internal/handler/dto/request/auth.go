package request

import (
	"savor-sync/internal/usecase/commands"
)

type LoginRequest struct {
	Token  string `json:"token" binding:"required"`
	UserID string `json:"userId" binding:"required"`
}

type FederatedSignInRequest struct {
	UserID       string `json:"userId" binding:"required"`
	IDToken      string `json:"idToken" binding:"required"`
	RefreshToken string `json:"refreshToken" binding:"required"`
}

func (r *FederatedSignInRequest) ToCommand() commands.FederatedSignIn {
	return commands.FederatedSignIn{
		UserID:       r.UserID,
		IDToken:      r.IDToken,
		RefreshToken: r.RefreshToken,
	}
}
