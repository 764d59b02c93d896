// Package cpf valida o CPF (Cadastro de Pessoas Físicas, Receita Federal).
// O CPF tem 9 dígitos base mais 2 dígitos verificadores calculados por módulo 11.
package cpf

import (
	"fmt"
	"unicode"
)

// Validate valida que o CPF (com ou sem pontos/hífen) tenha os dois dígitos
// verificadores corretos. Aceita "529.982.247-25", "52998224725" etc.
func Validate(cpf string) error {
	digits := extractDigits(cpf)
	if len(digits) != 11 {
		return fmt.Errorf("cpf: deve ter 11 dígitos, foram encontrados %d", len(digits))
	}
	if allEqual(digits) {
		// Sequências como 111.111.111-11 passam no módulo 11 mas são inválidas.
		return fmt.Errorf("cpf: sequência de dígitos repetidos é inválida")
	}
	d1 := checkDigit(digits[:9], 10)
	if digits[9] != d1 {
		return fmt.Errorf("cpf: primeiro dígito verificador inválido: esperado %c, recebido %c", d1, digits[9])
	}
	d2 := checkDigit(digits[:10], 11)
	if digits[10] != d2 {
		return fmt.Errorf("cpf: segundo dígito verificador inválido: esperado %c, recebido %c", d2, digits[10])
	}
	return nil
}

// Normalize devolve apenas os 11 dígitos do CPF, sem pontuação.
// Retorna erro se o CPF for inválido.
func Normalize(cpf string) (string, error) {
	if err := Validate(cpf); err != nil {
		return "", err
	}
	return string(extractDigits(cpf)), nil
}

// checkDigit calcula um dígito verificador por módulo 11 com peso inicial startWeight
// decrescendo até 2, da esquerda para a direita.
func checkDigit(base []byte, startWeight int) byte {
	var sum int
	for i, d := range base {
		sum += int(d-'0') * (startWeight - i)
	}
	remainder := sum % 11
	if remainder < 2 {
		return '0'
	}
	return byte('0' + (11 - remainder))
}

func allEqual(digits []byte) bool {
	for _, d := range digits[1:] {
		if d != digits[0] {
			return false
		}
	}
	return true
}

func extractDigits(s string) []byte {
	var out []byte
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, byte(r))
		}
	}
	return out
}
