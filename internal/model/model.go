package model

// Package model contains pure domain models shared across layers.
// No persistence tags or business logic here.
