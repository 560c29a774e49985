package patients

import "context"

// GroupOf expone el groupID de un paciente.
// Se usa para chequeos de acceso desde otros módulos (doses) sin
// generar ciclos de imports.
func (s *Service) GroupOf(ctx context.Context, patientID string) (string, error) {
	p, err := s.GetByID(ctx, patientID)
	if err != nil {
		return "", err
	}
	return p.GroupID, nil
}
