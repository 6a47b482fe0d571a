// Package heartbeat mantém o indicador de sincronização exibido no topo do
// painel. O estado é todo em memória: cada escrita emite um pulso e um job
// periódico marca o "sync" de rotina, imitando um backend com nuvem.
package heartbeat

import (
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/securetrack/securetrack-api/internal/application/usecase"
)

var _ usecase.SyncNotifier = (*Indicator)(nil)

// Status é a fotografia do indicador devolvida ao painel.
type Status struct {
	LastSync time.Time `json:"last_sync"`
	Pulses   uint64    `json:"pulses"` // escritas desde o início do processo
}

// Indicator implementa usecase.SyncNotifier com um job periódico de fundo.
type Indicator struct {
	mu       sync.RWMutex
	lastSync time.Time
	pulses   uint64
	cron     *cron.Cron
}

// New cria o indicador com o momento atual como último sync.
func New() *Indicator {
	return &Indicator{lastSync: time.Now()}
}

// Start agenda o tick de rotina. Chamar uma única vez.
func (i *Indicator) Start() {
	i.cron = cron.New()
	// @every 15s: mantém o indicador "vivo" mesmo sem escritas
	_, _ = i.cron.AddFunc("@every 15s", i.tick)
	i.cron.Start()
}

// Stop encerra o job de fundo, aguardando o tick em andamento.
func (i *Indicator) Stop() {
	if i.cron != nil {
		<-i.cron.Stop().Done()
	}
}

// Pulse registra uma escrita: avança o último sync e o contador.
func (i *Indicator) Pulse() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.lastSync = time.Now()
	i.pulses++
}

// Snapshot devolve o estado atual do indicador.
func (i *Indicator) Snapshot() Status {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return Status{LastSync: i.lastSync, Pulses: i.pulses}
}

func (i *Indicator) tick() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.lastSync = time.Now()
}
