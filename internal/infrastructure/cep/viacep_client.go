// Package cep contém o cliente do ViaCEP, o serviço público de consulta de
// endereços por CEP usado no formulário de clientes.
package cep

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/securetrack/securetrack-api/internal/application/dto"
	"github.com/securetrack/securetrack-api/internal/application/ports"
)

var _ ports.AddressLookup = (*ViaCEPClient)(nil)

const viaCEPBaseURL = "https://viacep.com.br/ws/%s/json/"

// ViaCEPClient implementa AddressLookup via a API pública do ViaCEP.
type ViaCEPClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewViaCEPClient constrói o cliente com o endpoint público.
func NewViaCEPClient() *ViaCEPClient {
	return &ViaCEPClient{
		baseURL: viaCEPBaseURL,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// viaCEPResponse é o corpo devolvido pelo ViaCEP. CEP inexistente chega com
// HTTP 200 e "erro": true.
type viaCEPResponse struct {
	CEP        string `json:"cep"`
	Logradouro string `json:"logradouro"`
	Bairro     string `json:"bairro"`
	Localidade string `json:"localidade"`
	UF         string `json:"uf"`
	Erro       bool   `json:"erro"`
}

// Lookup consulta o CEP (8 dígitos, já validado pelo caller). CEP não
// encontrado devolve Found=false sem erro.
func (c *ViaCEPClient) Lookup(ctx context.Context, cep string) (*dto.AddressDTO, error) {
	url := fmt.Sprintf(c.baseURL, cep)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("cep: criar HTTP request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cep: chamada HTTP falhou: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cep: ViaCEP HTTP %d", resp.StatusCode)
	}

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 16*1024))
	if err != nil {
		return nil, fmt.Errorf("cep: ler resposta: %w", err)
	}

	var body viaCEPResponse
	if err := json.Unmarshal(rawBody, &body); err != nil {
		return nil, fmt.Errorf("cep: desserializar resposta: %w", err)
	}
	if body.Erro {
		return &dto.AddressDTO{CEP: cep, Found: false}, nil
	}

	return &dto.AddressDTO{
		CEP:          cep,
		Street:       body.Logradouro,
		Neighborhood: body.Bairro,
		City:         body.Localidade,
		State:        body.UF,
		Found:        true,
	}, nil
}
