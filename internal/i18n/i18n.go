// Package i18n resolves the reference keys emitted by the coaching engine
// into display strings. The engine itself never produces human-readable text.
package i18n

import "strings"

// Language represents a supported language.
type Language string

const (
	// English is the English language.
	English Language = "en"
	// Finnish is the Finnish language.
	Finnish Language = "fi"
)

// DefaultLanguage is the fallback language.
const DefaultLanguage = Language(English)

// translations maps language codes to translation keys and their values.
// Placeholders use {param} syntax and are substituted by Format.
var translations = map[Language]map[string]string{
	English: {
		"language.picker.label": "Language",
		"language.name.en":      "English",
		"language.name.fi":      "Suomi",

		"rec_title_rest":               "Rest day",
		"rec_title_workout":            "Time to train",
		"rec_title_active_recovery":    "Active recovery",
		"rec_title_deload":             "Deload recommended",
		"rec_title_promotion":          "Ready to level up",
		"rec_title_imbalance":          "Strength imbalance",
		"rec_title_stall":              "Progress has stalled",
		"rec_title_circadian_nudge":    "Timing tip",
		"rec_title_efficiency_warning": "Long rests detected",
		"rec_title_goal_mismatch":      "Training off goal",
		"rec_title_technical_pr":       "Technical PR!",
		"rec_title_density_warning":    "Density dropping",
		"rec_title_volume_pivot":       "Change of approach",

		"rec_reason_rest":            "Your body needs time to recover before the next session.",
		"rec_reason_workout":         "{group} is fresh and has not been trained for {days} days.",
		"rec_reason_workout_routine": "Next up in your rotation: {routine}.",
		"rec_reason_trained_today":   "Workout complete. Some light mobility will help you recover.",
		"rec_reason_low_freshness":   "Average freshness is {freshness}. A light session keeps you moving without digging deeper.",
		"rec_reason_deload":          "Systemic fatigue is high ({score}/100). Take an easy session and come back stronger.",
		"rec_reason_promotion":       "You have hit the criteria on {from} for {count} sessions in a row. Try {to}.",
		"rec_reason_imbalance":       "Your {lift_a} is {ratio} of your {lift_b}, expected around {expected}.",
		"rec_reason_stall":           "{exercise} has been stuck at {weight} {unit} for {count} sessions.",
		"rec_reason_volume_pivot":    "{exercise} keeps stalling at {weight} {unit}. Drop to {sets} heavier sets and rebuild.",
		"rec_reason_stall_pivot":     "{exercise} keeps stalling at {weight} {unit}. Switch to a {reps}-rep range for a few weeks.",
		"rec_reason_technical_pr":    "Same weight on {exercise}, {seconds} seconds less rest. Efficiency is improving.",
		"rec_reason_density_warning": "Session density dropped {percent}% against your recent average. Ease off before fatigue builds.",
		"rec_reason_efficiency":      "{count} sets had rests over 5 minutes. Tighter rests keep intensity honest.",
		"rec_reason_goal_mismatch":   "Your recent sessions do not match your {goal} goal. Adjust reps and rest.",

		"rec_reason_circadian_morning":   "Morning sessions favour mobility work before heavy lifts. Warm up thoroughly.",
		"rec_reason_circadian_afternoon": "Strength tends to peak in the afternoon. Good time for your heaviest work.",
		"rec_reason_circadian_night":     "Training late can disturb sleep. Keep tonight's session short and easy.",
		"rec_reason_circadian_winter":    "Shorter daylight makes warm-ups matter more. Give yourself extra time.",

		"routine_name_push":      "Push day",
		"routine_name_pull":      "Pull day",
		"routine_name_legs":      "Leg day",
		"routine_name_upper":     "Upper body",
		"routine_name_lower":     "Lower body",
		"routine_name_full_body": "Full body",
		"routine_name_gap":       "Recovery session",
		"routine_desc_gap":       "A light session scaled to how recovered you are.",

		"supp_creatine":     "Creatine monohydrate, {dose} g daily.",
		"supp_protein":      "Protein target around {grams} g per day.",
		"supp_caffeine":     "Caffeine {dose} mg, 30-45 minutes before training.",
		"supp_note_timing":  "Timing matters less than consistency.",
		"supp_effect_up":    "Average session volume was {percent}% higher on days you took {supplement}.",
		"supp_effect_none":  "No clear volume difference on {supplement} days yet.",
		"supp_effect_early": "Not enough data on {supplement} yet. Keep logging.",
	},
	Finnish: {
		"language.picker.label": "Kieli",
		"language.name.en":      "English",
		"language.name.fi":      "Suomi",

		"rec_title_rest":               "Lepopäivä",
		"rec_title_workout":            "Aika treenata",
		"rec_title_active_recovery":    "Palauttava treeni",
		"rec_title_deload":             "Kevennystä suositellaan",
		"rec_title_promotion":          "Valmis seuraavalle tasolle",
		"rec_title_imbalance":          "Voimatasapaino vinossa",
		"rec_title_stall":              "Kehitys on pysähtynyt",
		"rec_title_circadian_nudge":    "Ajoitusvinkki",
		"rec_title_efficiency_warning": "Pitkiä palautuksia",
		"rec_title_goal_mismatch":      "Treeni ei vastaa tavoitetta",
		"rec_title_technical_pr":       "Tekninen ennätys!",
		"rec_title_density_warning":    "Tehokkuus laskussa",
		"rec_title_volume_pivot":       "Vaihda lähestymistapaa",

		"rec_reason_rest":            "Kehosi tarvitsee aikaa palautua ennen seuraavaa treeniä.",
		"rec_reason_workout":         "{group} on palautunut eikä sitä ole treenattu {days} päivään.",
		"rec_reason_workout_routine": "Seuraavana kierrossasi: {routine}.",
		"rec_reason_trained_today":   "Treeni tehty. Kevyt liikkuvuus auttaa palautumaan.",
		"rec_reason_low_freshness":   "Keskimääräinen palautuminen on {freshness}. Kevyt treeni pitää liikkeellä kaivamatta kuoppaa syvemmäksi.",
		"rec_reason_deload":          "Kokonaiskuormitus on korkea ({score}/100). Tee kevyt treeni ja palaa vahvempana.",
		"rec_reason_promotion":       "Olet täyttänyt kriteerit liikkeessä {from} jo {count} kertaa putkeen. Kokeile: {to}.",
		"rec_reason_imbalance":       "Liikkeesi {lift_a} on {ratio} liikkeestä {lift_b}, odotus noin {expected}.",
		"rec_reason_stall":           "{exercise} on jumissa painossa {weight} {unit} jo {count} treeniä.",
		"rec_reason_volume_pivot":    "{exercise} jumittaa painossa {weight} {unit}. Pudota {sets} raskaampaan sarjaan ja rakenna uudelleen.",
		"rec_reason_stall_pivot":     "{exercise} jumittaa painossa {weight} {unit}. Vaihda {reps} toiston alueelle muutamaksi viikoksi.",
		"rec_reason_technical_pr":    "Sama paino liikkeessä {exercise}, {seconds} sekuntia vähemmän lepoa. Tehokkuus paranee.",
		"rec_reason_density_warning": "Treenitiheys putosi {percent}% keskiarvostasi. Kevennä ennen kuin väsymys kasaantuu.",
		"rec_reason_efficiency":      "{count} sarjassa lepo venyi yli 5 minuuttiin. Tiukemmat palautukset pitävät tehot rehellisinä.",
		"rec_reason_goal_mismatch":   "Viimeaikaiset treenisi eivät vastaa tavoitettasi ({goal}). Säädä toistoja ja lepoja.",

		"rec_reason_circadian_morning":   "Aamutreenissä liikkuvuus ennen raskaita nostoja. Lämmittele huolella.",
		"rec_reason_circadian_afternoon": "Voimataso on korkeimmillaan iltapäivällä. Hyvä hetki raskaimmille sarjoille.",
		"rec_reason_circadian_night":     "Myöhäinen treeni voi häiritä unta. Pidä tämänpäiväinen lyhyenä ja kevyenä.",
		"rec_reason_circadian_winter":    "Lyhyt päivä korostaa lämmittelyä. Varaa siihen lisäaikaa.",

		"routine_name_push":      "Punnerruspäivä",
		"routine_name_pull":      "Vetopäivä",
		"routine_name_legs":      "Jalkapäivä",
		"routine_name_upper":     "Ylävartalo",
		"routine_name_lower":     "Alavartalo",
		"routine_name_full_body": "Koko keho",
		"routine_name_gap":       "Palauttava treeni",
		"routine_desc_gap":       "Kevyt treeni skaalattuna palautumisesi mukaan.",

		"supp_creatine":     "Kreatiinimonohydraatti, {dose} g päivässä.",
		"supp_protein":      "Proteiinitavoite noin {grams} g päivässä.",
		"supp_caffeine":     "Kofeiini {dose} mg, 30-45 minuuttia ennen treeniä.",
		"supp_note_timing":  "Säännöllisyys merkitsee ajoitusta enemmän.",
		"supp_effect_up":    "Keskimääräinen treenivolyymi oli {percent}% korkeampi päivinä, jolloin otit lisän {supplement}.",
		"supp_effect_none":  "Ei vielä selvää volyymieroa päivinä, jolloin otit lisän {supplement}.",
		"supp_effect_early": "Lisästä {supplement} ei ole vielä tarpeeksi dataa. Jatka kirjaamista.",
	},
}

// SupportedLanguages returns a list of all supported languages.
func SupportedLanguages() []Language {
	return []Language{English, Finnish}
}

// IsSupported checks if a language is supported.
func IsSupported(lang Language) bool {
	_, ok := translations[lang]
	return ok
}

// Translate returns the translation for the given key in the specified language.
// If the key is not found, it falls back to the default language.
// If still not found, it returns the key itself.
func Translate(lang Language, key string) string {
	// Try the requested language.
	if langTranslations, ok := translations[lang]; ok {
		if translation, ok := langTranslations[key]; ok {
			return translation
		}
	}

	// Fallback to default language.
	if lang != DefaultLanguage {
		if langTranslations, ok := translations[DefaultLanguage]; ok {
			if translation, ok := langTranslations[key]; ok {
				return translation
			}
		}
	}

	// Return the key itself if no translation found.
	return key
}

// Format translates the key and substitutes {param} placeholders from params.
// Unknown placeholders are left in place so missing parameters are visible.
func Format(lang Language, key string, params map[string]string) string {
	text := Translate(lang, key)
	for name, value := range params {
		text = strings.ReplaceAll(text, "{"+name+"}", value)
	}
	return text
}
