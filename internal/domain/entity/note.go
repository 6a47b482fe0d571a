package entity

import (
	"strings"
	"time"
)

// SystemNoteMarker identifica notas geradas automaticamente pelo sistema
// (mudança de status financeiro). Notas com esse marcador não podem ser
// excluídas pelo operador.
const SystemNoteMarker = "[SISTEMA]"

// Note é uma anotação de texto livre anexada a um Customer.
// As notas mais recentes ficam no início da lista.
type Note struct {
	ID        string
	Text      string
	CreatedAt time.Time
}

// IsSystem informa se a nota foi gerada pelo sistema.
func (n *Note) IsSystem() bool {
	return strings.Contains(n.Text, SystemNoteMarker)
}
