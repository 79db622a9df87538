package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const runIDLength = 12

// GenerateID gera o identificador curto usado nas execuções de relatório
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, runIDLength)
}
