package contact

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"time"

	"locallens/models"
)

// Forwarder posts enquiries to the third-party form endpoint the site
// fronts. Success is any 2xx status; there is no retry.
type Forwarder struct {
	Endpoint string
	Client   *http.Client
}

func NewForwarder(endpoint string) *Forwarder {
	return &Forwarder{
		Endpoint: endpoint,
		Client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Send posts the enquiry as multipart form data.
func (f *Forwarder) Send(e models.Enquiry) error {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	fields := map[string]string{
		"name":        e.Name,
		"email":       e.Email,
		"phone":       e.Phone,
		"message":     e.Message,
		"travel_date": e.TravelDate,
		"trip":        e.Trip,
	}
	for k, v := range fields {
		if v == "" {
			continue
		}
		if err := mw.WriteField(k, v); err != nil {
			return err
		}
	}
	if err := mw.Close(); err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, f.Endpoint, &body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	resp, err := f.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("form endpoint returned %s", resp.Status)
	}
	return nil
}
