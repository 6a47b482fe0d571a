package entity

import "time"

// Status de equipamento instalado.
const (
	EquipmentOperational      = "Operacional"
	EquipmentNeedsMaintenance = "Manutenção Necessária"
	EquipmentReplaced         = "Substituído"
)

// EquipmentStatuses lista os status de equipamento válidos.
var EquipmentStatuses = []string{
	EquipmentOperational, EquipmentNeedsMaintenance, EquipmentReplaced,
}

// ValidEquipmentStatus informa se s é um status de equipamento conhecido.
func ValidEquipmentStatus(s string) bool {
	for _, v := range EquipmentStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Equipment representa um equipamento instalado no endereço de um Customer.
type Equipment struct {
	ID               string
	Name             string
	Brand            string
	Model            string
	Status           string
	InstallationDate time.Time
	WarrantyUntil    time.Time
	IsLeased         bool // comodato: equipamento da empresa cedido ao cliente
}
