package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

// Alfabeto sem caracteres ambíguos (0/O, 1/l/I) para senhas ditadas por
// telefone.
const passwordCharacters = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnpqrstuvwxyz23456789"

// GenerateTemporaryPassword cria uma senha provisória de 8 caracteres
// para o fluxo de recuperação.
func GenerateTemporaryPassword() (string, error) {
	return gonanoid.Generate(passwordCharacters, 8)
}
