package googleclient

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	googledomain "github.com/vfg2006/marketpulse-api/infrastructure/integrator/google/domain"
)

type reportRequestBody struct {
	ReportRequests []reportRequest `json:"reportRequests"`
}

type reportRequest struct {
	ViewID     string          `json:"viewId"`
	DateRanges []dateRange     `json:"dateRanges"`
	Metrics    []metricExpr    `json:"metrics"`
	Dimensions []dimensionName `json:"dimensions"`
	OrderBys   []orderBy       `json:"orderBys"`
}

type dateRange struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type metricExpr struct {
	Expression string `json:"expression"`
}

type dimensionName struct {
	Name string `json:"name"`
}

type orderBy struct {
	FieldName string `json:"fieldName"`
	SortOrder string `json:"sortOrder"`
}

// GetCampaignReport emite uma única chamada batchGet pedindo as cinco
// métricas e as três dimensões fixas do relatório de campanhas, ordenado
// por sessões em ordem decrescente
func (c *GoogleClient) GetCampaignReport(accessToken, viewID, startDate, endDate string) (*googledomain.ReportResponse, error) {
	requestBody := reportRequestBody{
		ReportRequests: []reportRequest{
			{
				ViewID: viewID,
				DateRanges: []dateRange{
					{StartDate: startDate, EndDate: endDate},
				},
				Metrics: []metricExpr{
					{Expression: "ga:sessions"},
					{Expression: "ga:users"},
					{Expression: "ga:pageviews"},
					{Expression: "ga:bounceRate"},
					{Expression: "ga:avgSessionDuration"},
				},
				Dimensions: []dimensionName{
					{Name: "ga:source"},
					{Name: "ga:medium"},
					{Name: "ga:campaign"},
				},
				OrderBys: []orderBy{
					{FieldName: "ga:sessions", SortOrder: "DESCENDING"},
				},
			},
		},
	}

	payload, err := json.Marshal(requestBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, c.Cfg.Google.ReportingURL+"/reports:batchGet", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"view_id": viewID,
			"error":   err.Error(),
		}).Error("google: erro ao buscar relatório de campanhas")
		return nil, err
	}

	body, err := c.handleResponse("campaign_report", resp)
	if err != nil {
		return nil, err
	}

	var response googledomain.ReportResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("google: erro ao decodificar relatório de campanhas")
		return nil, err
	}

	return &response, nil
}
