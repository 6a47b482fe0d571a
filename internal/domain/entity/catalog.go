package entity

import "github.com/shopspring/decimal"

// CatalogItem é uma entrada do catálogo de equipamentos usado para montar
// propostas e instalações. O catálogo é estático, não há CRUD sobre ele.
type CatalogItem struct {
	Name      string
	Brand     string
	Model     string
	BasePrice decimal.Decimal
}

// EquipmentCatalog lista os equipamentos trabalhados pela empresa.
var EquipmentCatalog = []CatalogItem{
	{Name: "Painel de Alarme", Brand: "Intelbras", Model: "AMT 2018 E", BasePrice: decimal.NewFromInt(450)},
	{Name: "Sensor de Presença", Brand: "JFL", Model: "DX-400", BasePrice: decimal.NewFromInt(85)},
	{Name: "Câmera IP", Brand: "Hikvision", Model: "DS-2CD1023G0E", BasePrice: decimal.NewFromInt(280)},
	{Name: "Sirene de Alta Potência", Brand: "Intelbras", Model: "SIR 1000", BasePrice: decimal.NewFromInt(45)},
	{Name: "Bateria Estacionária", Brand: "Moura", Model: "12V 7Ah", BasePrice: decimal.NewFromInt(120)},
	{Name: "Cerca Elétrica", Brand: "JFL", Model: "ECR-18", BasePrice: decimal.NewFromInt(350)},
}
