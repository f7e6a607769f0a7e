package handlers

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"becas-crm/config"

	"github.com/gin-gonic/gin"
	"github.com/google/generative-ai-go/genai"
)

// RecognizeCallHandler распознает параметры конвокатории из файла
// официального объявления (PDF BOE) с помощью Gemini. Результат - строгий
// JSON для предзаполнения формы создания конвокатории.
func RecognizeCallHandler(c *gin.Context) {
	if config.GeminiClient == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Document recognition is not configured"})
		return
	}

	file, header, err := c.Request.FormFile("announcementFile")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Announcement file is required"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file data"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	prompt := []genai.Part{
		genai.Text("Ты — эксперт по обработке испанских государственных объявлений о стипендиях (convocatorias de becas, BOE). " +
			"Проанализируй предоставленный файл и извлеки: учебный год, окончание срока подачи заявок (plazo de presentación), " +
			"минимальную матрикуляцию по уровням обучения (matriculación mínima), процент покрытия кредитов по отраслям " +
			"(porcentajes por rama), фиксированные суммы (cuantía fija ligada a la renta, ligada a la residencia, beca básica, " +
			"cuantía variable mínima) и параметры бонуса за отличие (nota mínima, cuantía mínima y máxima). " +
			"Твой ответ должен быть только в формате JSON, без каких-либо лишних слов или пояснений. Вот структура JSON, которую нужно заполнить:\n" +
			`{"academicYear": "", "applicationDeadline": "гггг-мм-дд", ` +
			`"matriculacionMinima": {"universitario": 0, "bachillerato": 0}, ` +
			`"porcentajesPorRama": {"artes_humanidades": 0, "ciencias_sociales_juridicas": 0, "ciencias_de_la_salud": 0, "ciencias": 0, "ingenieria_arquitectura_tecnicas": 0}, ` +
			`"cuantias": {"fija_renta": "0.00", "fija_residencia": "0.00", "beca_basica": "0.00", "variable_minima": "0.00"}, ` +
			`"excelencia": {"notaMinima": "0.00", "cuantiaMin": "0.00", "cuantiaMax": "0.00"}}`),
		&genai.Blob{MIMEType: header.Header.Get("Content-Type"), Data: data},
	}

	resp, err := config.GeminiClient.GenerateContent(ctx, prompt...)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gemini recognition error: " + err.Error()})
		return
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gemini returned no result"})
		return
	}

	jsonResponse, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to convert Gemini response to text"})
		return
	}

	cleanJSON := strings.Trim(string(jsonResponse), "```json \n")
	c.Data(http.StatusOK, "application/json", []byte(cleanJSON))
}
