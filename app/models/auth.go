package models

import "github.com/golang-jwt/jwt/v5"

// Credential is a member's login record. Hash is a bcrypt digest.
type Credential struct {
	MemberID int    `json:"memberId" bson:"member_id"`
	Email    string `json:"email" bson:"email"`
	Hash     string `json:"-" bson:"hash"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
	Member    Member `json:"member"`
}

type JWTClaims struct {
	MemberID int    `json:"member_id"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}
