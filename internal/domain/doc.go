// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/dose, domain/reagent).
// This root package holds sentinel errors and validation types shared across
// all entities.
package domain
