package models

import (
	"sort"
	"strings"
)

// SealKind groups the fixed catalog
type SealKind string

const (
	SealKindFood  SealKind = "food"
	SealKindDrink SealKind = "drink"
)

// Seal is a colored badge attached to menu items
type Seal struct {
	ID           string   `json:"id" example:"vegetariano"`
	Name         string   `json:"name" example:"Vegetariano"`
	Kind         SealKind `json:"kind" example:"food"`
	DefaultColor string   `json:"defaultColor" example:"#2E7D32"`
	Color        string   `json:"color" example:"#2E7D32"`
	Custom       bool     `json:"custom"`
}

var sealCatalog = []Seal{
	{ID: "vegetariano", Name: "Vegetariano", Kind: SealKindFood, DefaultColor: "#2E7D32"},
	{ID: "vegano", Name: "Vegano", Kind: SealKindFood, DefaultColor: "#388E3C"},
	{ID: "sem-gluten", Name: "Sem Glúten", Kind: SealKindFood, DefaultColor: "#F9A825"},
	{ID: "sem-lactose", Name: "Sem Lactose", Kind: SealKindFood, DefaultColor: "#0288D1"},
	{ID: "picante", Name: "Picante", Kind: SealKindFood, DefaultColor: "#D32F2F"},
	{ID: "especial-do-chef", Name: "Especial do Chef", Kind: SealKindFood, DefaultColor: "#6A1B9A"},
	{ID: "mais-pedido", Name: "Mais Pedido", Kind: SealKindFood, DefaultColor: "#EF6C00"},
	{ID: "novidade", Name: "Novidade", Kind: SealKindFood, DefaultColor: "#00897B"},
	{ID: "sem-alcool", Name: "Sem Álcool", Kind: SealKindDrink, DefaultColor: "#00ACC1"},
	{ID: "autoral", Name: "Autoral", Kind: SealKindDrink, DefaultColor: "#8E24AA"},
	{ID: "classico", Name: "Clássico", Kind: SealKindDrink, DefaultColor: "#5D4037"},
	{ID: "refrescante", Name: "Refrescante", Kind: SealKindDrink, DefaultColor: "#26A69A"},
	{ID: "doce", Name: "Doce", Kind: SealKindDrink, DefaultColor: "#EC407A"},
	{ID: "amargo", Name: "Amargo", Kind: SealKindDrink, DefaultColor: "#795548"},
}

// SealCatalog returns a copy of the fixed catalog
func SealCatalog() []Seal {
	out := make([]Seal, len(sealCatalog))
	copy(out, sealCatalog)
	for i := range out {
		out[i].Color = out[i].DefaultColor
	}
	return out
}

// IsKnownSeal reports whether id belongs to the fixed catalog
func IsKnownSeal(id string) bool {
	for _, s := range sealCatalog {
		if s.ID == id {
			return true
		}
	}
	return false
}

// SealsForBar applies a bar's color overrides on top of the catalog
func SealsForBar(overrides map[string]string) []Seal {
	seals := SealCatalog()
	for i := range seals {
		if c, ok := overrides[seals[i].ID]; ok && c != "" {
			seals[i].Color = c
			seals[i].Custom = true
		}
	}
	return seals
}

const winePrefix = "vinho:"

// Known wine attributes encoded as vinho:<attribute>:<value>
const (
	WineCountry = "pais"
	WineGrape   = "uva"
	WineType    = "tipo"
	WineRegion  = "regiao"
)

// WineAttribute is a decoded vinho:* pseudo seal
type WineAttribute struct {
	Attribute string `json:"attribute" example:"pais"`
	Value     string `json:"value" example:"Argentina"`
}

// ID encodes the attribute back into its pseudo seal id
func (w WineAttribute) ID() string {
	return winePrefix + w.Attribute + ":" + w.Value
}

// ParseWineAttribute decodes ids like vinho:pais:Argentina
func ParseWineAttribute(id string) (WineAttribute, bool) {
	if !strings.HasPrefix(id, winePrefix) {
		return WineAttribute{}, false
	}
	parts := strings.SplitN(strings.TrimPrefix(id, winePrefix), ":", 2)
	if len(parts) != 2 {
		return WineAttribute{}, false
	}
	attr, value := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	switch attr {
	case WineCountry, WineGrape, WineType, WineRegion:
	default:
		return WineAttribute{}, false
	}
	if value == "" {
		return WineAttribute{}, false
	}
	return WineAttribute{Attribute: attr, Value: value}, true
}

// WineValues lists the distinct values of one attribute across items, sorted
func WineValues(items []MenuItem, attribute string) []string {
	seen := map[string]struct{}{}
	for i := range items {
		for _, w := range items[i].WineAttributes() {
			if w.Attribute == attribute {
				seen[w.Value] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
