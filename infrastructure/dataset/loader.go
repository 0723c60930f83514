// Package dataset carrega e mantém em memória o snapshot de dados de varejo
// consumido pelas ferramentas de analytics.
package dataset

import (
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retailbot-api/internal/domain"
	"github.com/vfg2006/retailbot-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Loader carrega um snapshot completo do dataset a partir da fonte configurada
type Loader interface {
	Load() (*domain.Dataset, error)
}

// FileLoader lê o dataset de um arquivo JSON local ou de uma URL http(s).
// Linhas malformadas são rejeitadas na borda de carga e contabilizadas;
// a carga só falha quando a fonte não pode ser lida ou decodificada.
type FileLoader struct {
	source string
}

func NewFileLoader(source string) *FileLoader {
	return &FileLoader{source: source}
}

func (l *FileLoader) Load() (*domain.Dataset, error) {
	raw, err := l.read()
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler a fonte de dados %q", l.source)
	}

	decoded := &domain.Dataset{}
	if err := json.Unmarshal(raw, decoded); err != nil {
		return nil, errors.Wrapf(err, "erro ao decodificar a fonte de dados %q", l.source)
	}

	ds, rejected := validate(decoded)
	if rejected > 0 {
		logrus.WithFields(logrus.Fields{
			"dataset_source": l.source,
			"rejected_rows":  rejected,
		}).Warn("Linhas malformadas rejeitadas na carga do dataset")
	}

	logrus.WithFields(logrus.Fields{
		"dataset_source": l.source,
		"sales":          len(ds.Sales),
		"inventory":      len(ds.Inventory),
		"customers":      len(ds.Customers),
		"stores":         len(ds.Stores),
	}).Info("Dataset carregado com sucesso")

	return ds, nil
}

func (l *FileLoader) read() ([]byte, error) {
	if strings.HasPrefix(l.source, "http://") || strings.HasPrefix(l.source, "https://") {
		return utils.MakeRequest(l.source)
	}

	return os.ReadFile(l.source)
}

// validate aplica a construção validada dos registros: linhas com campos
// obrigatórios ausentes, datas fora do formato YYYY-MM-DD, quantidades não
// positivas, valores monetários negativos ou produto duplicado no inventário
// são descartadas. Retorna o dataset saneado e o total de linhas rejeitadas.
func validate(in *domain.Dataset) (*domain.Dataset, int) {
	out := &domain.Dataset{}
	rejected := 0

	for _, s := range in.Sales {
		if s.Store == "" || s.Product == "" || s.Category == "" ||
			s.Quantity <= 0 || s.Total < 0 ||
			utils.ValidateDateString(s.Date) != nil || s.Date == "" {
			rejected++
			continue
		}
		out.Sales = append(out.Sales, s)
	}

	seenProducts := make(map[string]bool, len(in.Inventory))
	for _, i := range in.Inventory {
		if i.Product == "" || i.Cost < 0 || i.CurrentStock < 0 || i.ReorderPoint < 0 || seenProducts[i.Product] {
			rejected++
			continue
		}
		seenProducts[i.Product] = true
		out.Inventory = append(out.Inventory, i)
	}

	for _, c := range in.Customers {
		if c.Name == "" || c.TotalPurchases < 0 {
			rejected++
			continue
		}
		out.Customers = append(out.Customers, c)
	}

	for _, s := range in.Stores {
		if s.Name == "" || s.MonthlyTarget < 0 {
			rejected++
			continue
		}
		out.Stores = append(out.Stores, s)
	}

	for _, d := range in.DepartmentSales {
		if d.Department == "" || utils.ValidateDateString(d.Date) != nil || d.Date == "" {
			rejected++
			continue
		}
		out.DepartmentSales = append(out.DepartmentSales, d)
	}

	for _, i := range in.ItemSales {
		if i.Item == "" || utils.ValidateDateString(i.Date) != nil || i.Date == "" {
			rejected++
			continue
		}
		out.ItemSales = append(out.ItemSales, i)
	}

	for _, i := range in.ItemStock {
		if i.Item == "" || i.QOH < 0 {
			rejected++
			continue
		}
		out.ItemStock = append(out.ItemStock, i)
	}

	for _, i := range in.ItemSpecials {
		if i.Item == "" {
			rejected++
			continue
		}
		out.ItemSpecials = append(out.ItemSpecials, i)
	}

	return out, rejected
}
