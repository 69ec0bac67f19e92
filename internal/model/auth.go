package model

// AuthContext is the identity resolved by the auth middleware. It is passed
// explicitly into usecases instead of being looked up from request state.
type AuthContext struct {
	UserId int64
}
