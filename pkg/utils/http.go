package utils

import (
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

// Cliente com timeout para buscar o dataset em fontes http(s).
// A carga roda em cron, então um timeout generoso é aceitável.
var datasetClient = &http.Client{Timeout: 30 * time.Second}

// MakeRequest faz um GET simples e retorna o corpo da resposta
func MakeRequest(url string) ([]byte, error) {
	resp, err := datasetClient.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("requisição para %s falhou com status %s", url, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return data, nil
}
