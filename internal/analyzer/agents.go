package analyzer

import (
	"fmt"
	"strings"

	"github.com/openlinkage/openlinkage/api/models"
)

// Fixed agent identifiers. agentFuncs below fixes their invocation order,
// which is also the order their results appear in every payload.
const (
	AgentHealthButler = "HealthButlerAgent"
	AgentNutrition    = "NutritionAgent"
	AgentExercise     = "ExerciseAgent"
	AgentMedication   = "MedicationAgent"
)

// agentFunc maps a normalized request to one agent's result. Agents are
// total: they never fail and never mutate the request.
type agentFunc func(models.AnalysisRequest) models.AgentResult

var agentFuncs = []agentFunc{
	runHealthButlerAgent,
	runNutritionAgent,
	runExerciseAgent,
	runMedicationAgent,
}

func formatResult(agent string, entries []string) models.AgentResult {
	return models.AgentResult{
		Agent:           agent,
		Summary:         fmt.Sprintf("%s processed the latest request and produced tailored guidance.", agent),
		Recommendations: entries,
	}
}

// runHealthButlerAgent covers sleep hygiene and day-to-day lifestyle habits.
func runHealthButlerAgent(req models.AnalysisRequest) models.AgentResult {
	lifestyleTips := []string{
		"Follow a consistent sleep schedule to support hormone balance.",
		"Limit screen time before bed to improve sleep quality.",
	}
	if req.LifestyleNotes != "" {
		lifestyleTips = append(lifestyleTips, "Incorporate user note: "+req.LifestyleNotes)
	}
	return formatResult(AgentHealthButler, lifestyleTips)
}

func runNutritionAgent(req models.AnalysisRequest) models.AgentResult {
	dietTips := []string{
		"Prioritize vegetables and lean protein in daily meals.",
		"Stay hydrated and limit sugary beverages.",
	}
	if strings.Contains(strings.ToLower(strings.Join(req.Goals, " ")), "weight") {
		dietTips = append(dietTips, "Adopt a calorie-aware meal plan with balanced macros.")
	}
	for _, goal := range req.Goals {
		if strings.HasPrefix(strings.ToLower(goal), "muscle") {
			dietTips = append(dietTips, "Increase protein intake and distribute across meals.")
			break
		}
	}
	return formatResult(AgentNutrition, dietTips)
}

func runExerciseAgent(req models.AnalysisRequest) models.AgentResult {
	exerciseTips := []string{
		"Include 150 minutes of moderate exercise per week.",
		"Add two strength sessions to support muscle health.",
	}
	if strings.Contains(strings.ToLower(strings.Join(req.Symptoms, " ")), "fatigue") {
		exerciseTips = append(exerciseTips, "Start with low-impact routines and gradually increase intensity.")
	}
	if strings.Contains(strings.ToLower(req.LifestyleNotes), "evening") {
		exerciseTips = append(exerciseTips, "Schedule lighter mobility work in the evening to match preferences.")
	}
	return formatResult(AgentExercise, exerciseTips)
}

// urgentSymptoms is the MedicationAgent escalation set. It is maintained
// separately from the critical-warning table in warnings.go: the keyword
// sets and messages differ and must not be merged.
var urgentSymptoms = map[string]struct{}{
	"chest pain":          {},
	"shortness of breath": {},
	"severe headache":     {},
}

// runMedicationAgent shares safety guardrails and clinician handoff cues;
// it never prescribes.
func runMedicationAgent(req models.AnalysisRequest) models.AgentResult {
	safetyNotes := []string{
		"Avoid self-prescribing antibiotics; consult a clinician first.",
		"Keep a list of current medications to share with healthcare providers.",
	}
	if hasUrgentSymptom(req.Symptoms) {
		safetyNotes = append(safetyNotes, "Seek urgent care for chest pain, severe headache, or breathing difficulty.")
	}
	if req.LifestyleNotes != "" {
		safetyNotes = append(safetyNotes, "Discuss lifestyle supplements with a pharmacist to check interactions.")
	}
	return formatResult(AgentMedication, safetyNotes)
}

// hasUrgentSymptom reports whether any symptom, compared case-insensitively,
// exactly matches an entry of the escalation set. Substring matches do not
// count.
func hasUrgentSymptom(symptoms []string) bool {
	for _, symptom := range symptoms {
		if _, ok := urgentSymptoms[strings.ToLower(symptom)]; ok {
			return true
		}
	}
	return false
}
