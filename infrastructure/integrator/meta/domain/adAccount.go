package domain

// AdAccount é uma conta de anúncios como a Graph API a devolve em
// /me/adaccounts. Nenhum destes nomes de campo vaza para fora do integrador.
type AdAccount struct {
	ID            string `json:"id"`
	AccountID     string `json:"account_id"`
	Name          string `json:"name"`
	Currency      string `json:"currency"`
	AccountStatus int    `json:"account_status"`
	BusinessName  string `json:"business_name"`
}

type Paging struct {
	Cursors struct {
		Before string `json:"before"`
		After  string `json:"after"`
	} `json:"cursors"`
	Next string `json:"next"`
}
