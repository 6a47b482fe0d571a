package dto

// AddressDTO resultado da consulta de CEP para pré-preencher o formulário.
// Found=false (CEP inexistente ou serviço fora do ar) deixa os campos em
// branco; a falha nunca é propagada como erro duro.
type AddressDTO struct {
	CEP          string `json:"cep"`
	Street       string `json:"street"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	Found        bool   `json:"found"`
}
