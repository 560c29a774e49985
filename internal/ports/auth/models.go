package auth

// Claims representa la información extraída del token.
// GroupID es el grupo de cuidado del usuario: la unidad de acceso
// de todo el servicio.
type Claims struct {
	UserID  string
	Email   string
	GroupID string
}
