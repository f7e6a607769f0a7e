package handlers

import (
	"fmt"
	"math"
	"net/http"
	"strings"

	"becas-crm/config"
	"becas-crm/models"

	"github.com/divan/num2words"
	"github.com/gin-gonic/gin"
)

// GetAwardNotificationHandler формирует текст уведомления о решении по
// заявке. Итоговая сумма дублируется прописью, как в официальных письмах.
func GetAwardNotificationHandler(c *gin.Context) {
	id := c.Param("id")
	var application models.Application
	err := config.DB.Preload("Applicant").Preload("GrantCall").First(&application, id).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}

	if application.Status != "Awarded" && application.Status != "Denied" {
		c.JSON(http.StatusConflict, gin.H{"error": "Application has not been decided yet"})
		return
	}

	var evaluation models.Evaluation
	err = config.DB.Where("application_id = ?", application.ID).
		Order("id desc").First(&evaluation).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No evaluation found for this application"})
		return
	}

	applicantName := strings.TrimSpace(fmt.Sprintf("%s %s", application.Applicant.FirstName, application.Applicant.LastName))

	var body strings.Builder
	fmt.Fprintf(&body, "Expediente: %s\n", application.Number)
	fmt.Fprintf(&body, "Convocatoria: %s (%s)\n\n", application.GrantCall.Title, application.GrantCall.AcademicYear)

	if application.Status == "Denied" {
		fmt.Fprintf(&body, "Estimado/a %s:\n\n", applicantName)
		fmt.Fprintf(&body, "Su solicitud de beca ha sido DENEGADA.\nMotivo: %s\n", application.RejectionReason)
	} else {
		fmt.Fprintf(&body, "Estimado/a %s:\n\n", applicantName)
		body.WriteString("Su solicitud de beca ha sido CONCEDIDA con el siguiente desglose:\n\n")
		fmt.Fprintf(&body, "  - Beca de matrícula: %.0f%% de los créditos de primera matrícula\n", evaluation.TuitionPercent)
		for name, amount := range evaluation.Breakdown {
			fmt.Fprintf(&body, "  - %s: %.2f €\n", name, amount)
		}
		if evaluation.ExcellenceBonus > 0 {
			fmt.Fprintf(&body, "  - Excelencia académica: %.2f €\n", evaluation.ExcellenceBonus)
		}
		fmt.Fprintf(&body, "\nImporte total: %.2f € (%s)\n", evaluation.Total, amountInWords(evaluation.Total))
	}

	c.JSON(http.StatusOK, gin.H{
		"applicationId": application.ID,
		"status":        application.Status,
		"body":          body.String(),
	})
}

// amountInWords записывает сумму в евро прописью.
func amountInWords(amount float64) string {
	euros := int(amount)
	cents := int(math.Round((amount - float64(euros)) * 100))
	euroWords := num2words.Convert(euros)
	if cents == 0 {
		return fmt.Sprintf("%s euros", euroWords)
	}
	return fmt.Sprintf("%s euros con %02d céntimos", euroWords, cents)
}
