package synonyms

// table maps a canonical term to its equivalents. Terms are stored in
// normalized (lowercase) form so they compare directly against tokens.
// Bilingual EN/DE entries cover the vocabulary common in German postings.
var table = map[string][]string{
	"etl":        {"data pipeline", "datenpipeline", "elt"},
	"sql":        {"database", "datenbank", "postgresql", "mysql"},
	"nosql":      {"mongodb", "dynamodb", "cassandra"},
	"javascript": {"ecmascript", "node", "nodejs"},
	"typescript": {"tsx"},
	"golang":     {"go"},
	"kubernetes": {"k8s", "container orchestration"},
	"docker":     {"container", "containerisierung"},
	"aws":        {"amazon web services", "cloud"},
	"gcp":        {"google cloud", "google cloud platform"},
	"azure":      {"microsoft cloud"},
	"cicd":       {"continuous integration", "continuous delivery", "jenkins", "pipeline"},
	"agile":      {"scrum", "kanban", "agil"},
	"frontend":   {"front end", "client side", "ui development"},
	"backend":    {"back end", "server side"},
	"fullstack":  {"full stack"},
	"machine learning": {"maschinelles lernen", "deep learning"},
	"data analysis":    {"datenanalyse", "analytics"},
	"testing":          {"quality assurance", "qualitätssicherung", "test automation"},
	"leadership":       {"führung", "teamleitung", "team lead"},
	"project management": {"projektmanagement", "projektleitung"},
	"communication":      {"kommunikation", "stakeholder management"},
	"microservices":      {"microservice", "service oriented architecture"},
	"rest":               {"restful", "http api", "web api"},
	"security":           {"sicherheit", "informationssicherheit"},
	"monitoring":         {"observability", "grafana", "prometheus"},
}
