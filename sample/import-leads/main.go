package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/reboundcg/lead-portal/internal/usecase"
)

// Manual smoke test: posts a small lead batch to a running portal through
// POST /api/import, then reads it back through GET /api/leads.
func main() {
	godotenv.Load()

	baseURL := os.Getenv("PORTAL_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	operatorID := os.Getenv("PORTAL_OPERATOR_ID")
	if operatorID == "" {
		log.Fatal("PORTAL_OPERATOR_ID must be set to an admin operator id")
	}

	batch := []usecase.LeadTransfer{
		{
			ID:              uuid.New().String(),
			CaseNumber:      "2024-CA-009999",
			County:          "FL-MiamiDade",
			LeadType:        "Surplus",
			AuctionDate:     "2025-01-10",
			PropertyAddress: "100 Ocean Dr",
			PropertyCity:    "Miami",
			PropertyZip:     "33101",
			SoldAmount:      "$310,000",
			JudgmentAmount:  "$260,000",
			Surplus:         "$50,000",
			Defendants:      "DOE, JOHN; DOE, JANE",
			Plaintiffs:      "BANK OF EXAMPLE",
		},
		{
			ID:          uuid.New().String(),
			CaseNumber:  "2024-CA-010000",
			County:      "GA-Fulton",
			LeadType:    "Future Auction",
			AuctionDate: "2025-06-01",
			Defendants:  "SMITH, ALEX",
		},
	}

	body, _ := json.Marshal(batch)
	fmt.Println("importing", len(batch), "leads...")
	resp := do(http.MethodPost, baseURL+"/api/import", operatorID, bytes.NewReader(body))
	fmt.Println("import:", resp)

	resp = do(http.MethodGet, baseURL+"/api/leads?state=FL&sort=surplus&dir=desc", operatorID, nil)
	fmt.Println("leads:", resp)
}

func do(method, url, operatorID string, body io.Reader) string {
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		log.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Operator-ID", operatorID)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	return fmt.Sprintf("%s %s", resp.Status, data)
}
