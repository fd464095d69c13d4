package admin

import (
	"context"
	"net/http"
	"strconv"

	"locallens/db"
	"locallens/models"
	"locallens/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func listLimit(r *http.Request) int64 {
	limit := int64(50)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}
	return limit
}

// GET /api/admin/enquiries
func GetEnquiries(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	opts := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetLimit(listLimit(r))

	cursor, err := db.EnquiriesCollection.Find(context.TODO(), bson.M{}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch enquiries")
		return
	}
	defer cursor.Close(context.TODO())

	enquiries := []models.Enquiry{}
	if err := cursor.All(context.TODO(), &enquiries); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error processing enquiries")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, enquiries)
}

// GET /api/admin/quotes
func GetQuotes(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	opts := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetLimit(listLimit(r))

	cursor, err := db.QuotesCollection.Find(context.TODO(), bson.M{}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch quotes")
		return
	}
	defer cursor.Close(context.TODO())

	quotes := []models.QuoteRecord{}
	if err := cursor.All(context.TODO(), &quotes); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error processing quotes")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, quotes)
}
