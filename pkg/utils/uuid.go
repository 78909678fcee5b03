package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

// idAlphabet restringe os IDs a caracteres alfanuméricos, seguros para
// uso em URLs e chaves de banco.
const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const idLength = 6

// GenerateID gera um identificador curto para registros locais.
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, idLength)
}
