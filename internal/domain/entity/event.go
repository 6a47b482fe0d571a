package entity

import "time"

// Tipos de evento do histórico operacional.
const (
	EventStatusChange         = "Alteração de Status"
	EventCustomerInteraction  = "Interação com Cliente"
	EventDataModification     = "Alteração de Dados"
	EventEquipmentMaintenance = "Manutenção de Equipamento"
	EventSystem               = "Sistema"
	EventSecurityAlert        = "Alerta de Segurança"
)

// EventTypes lista os tipos de evento válidos.
var EventTypes = []string{
	EventStatusChange, EventCustomerInteraction, EventDataModification,
	EventEquipmentMaintenance, EventSystem, EventSecurityAlert,
}

// Severidade de um evento.
const (
	SeveritySuccess  = "Sucesso"
	SeverityWarning  = "Alerta"
	SeverityCritical = "Crítico"
	SeverityInfo     = "Informativo"
)

// EventSeverities lista as severidades válidas.
var EventSeverities = []string{
	SeveritySuccess, SeverityWarning, SeverityCritical, SeverityInfo,
}

// ValidEventType informa se s é um tipo de evento conhecido.
func ValidEventType(s string) bool {
	for _, v := range EventTypes {
		if v == s {
			return true
		}
	}
	return false
}

// ValidEventSeverity informa se s é uma severidade conhecida.
func ValidEventSeverity(s string) bool {
	for _, v := range EventSeverities {
		if v == s {
			return true
		}
	}
	return false
}

// AppEvent é um registro imutável do histórico de eventos. O log é
// estritamente append-only: nenhuma operação remove ou altera eventos.
// Eventos não referenciam outras entidades estruturalmente; TargetID é
// apenas informativo.
type AppEvent struct {
	ID          string
	Timestamp   time.Time
	Type        string
	Description string
	User        string
	Severity    string
	Details     string // opcional
	TargetID    string // opcional
}
