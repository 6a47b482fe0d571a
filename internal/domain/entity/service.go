package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de serviço. Todo serviço criado pelo formulário nasce em
// ServiceAwaitingApproval; a conversão de orçamento cria direto em ServicePending.
const (
	ServiceActive            = "Ativo"
	ServicePending           = "Pendente"
	ServiceFinished          = "Finalizado"
	ServiceOverdue           = "Em Atraso"
	ServiceAwaitingApproval  = "Aguardando Autorização"
)

// ServiceStatuses lista os status de serviço válidos.
var ServiceStatuses = []string{
	ServiceActive, ServicePending, ServiceFinished, ServiceOverdue, ServiceAwaitingApproval,
}

// Tipos de serviço oferecidos pela empresa.
const (
	ServiceMonitoring   = "Monitoramento"
	ServiceMaintenance  = "Manutenção"
	ServiceSales        = "Venda"
	ServiceLease        = "Comodato"
	ServiceInstallation = "Instalação"
	ServiceRepair       = "Reparo Técnico"
)

// ServiceTypes lista os tipos de serviço válidos.
var ServiceTypes = []string{
	ServiceMonitoring, ServiceMaintenance, ServiceSales,
	ServiceLease, ServiceInstallation, ServiceRepair,
}

// ValidServiceStatus informa se s é um status de serviço conhecido.
func ValidServiceStatus(s string) bool {
	for _, v := range ServiceStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// ValidServiceType informa se s é um tipo de serviço conhecido.
func ValidServiceType(s string) bool {
	for _, v := range ServiceTypes {
		if v == s {
			return true
		}
	}
	return false
}

// Service representa um contrato de serviço pertencente a exatamente um Customer.
type Service struct {
	ID            string
	Type          string
	Status        string
	StartDate     time.Time
	EndDate       *time.Time // opcional
	RenewalDate   *time.Time // opcional
	Price         decimal.Decimal
	PaymentMethod string
	Description   string // texto livre; conversões recebem o marcador [CONVERTIDO]
	ContractNotes string
}
