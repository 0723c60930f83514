package domain

// Tipos do dataset legado de smart retail (consultas por item/departamento)

// DepartmentSale é o total de vendas de um departamento em uma data
type DepartmentSale struct {
	Date       string  `json:"date"`
	Department string  `json:"department"`
	Sales      float64 `json:"sales"`
}

// ItemSale é a venda consolidada de um item em uma data
type ItemSale struct {
	Date    string  `json:"date"`
	Item    string  `json:"item"`
	Qty     int     `json:"qty"`
	Revenue float64 `json:"revenue"`
}

// ItemStock é a quantidade em mãos de um item
type ItemStock struct {
	Item string `json:"item"`
	QOH  int    `json:"qoh"`
}

// ItemSpecial é uma promoção vigente de um item
type ItemSpecial struct {
	Item  string `json:"item"`
	Desc  string `json:"desc"`
	Start string `json:"start"`
	End   string `json:"end"`
}
