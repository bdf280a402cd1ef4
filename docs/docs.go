// Package docs holds the OpenAPI description of the HTTP API served by the
// swagger UI. Keep it in sync with the handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/health.Report"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/health.Report"}}
                }
            }
        },
        "/roles": {
            "get": {
                "produces": ["application/json"],
                "tags": ["roles"],
                "summary": "List job roles",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "array", "items": {"$ref": "#/definitions/jobdesc.Role"}}}}
                }
            }
        },
        "/resume/parse": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["resume"],
                "summary": "Parse and evaluate a resume",
                "parameters": [
                    {"type": "file", "description": "Resume file (pdf, docx, odt, txt)", "name": "file", "in": "formData", "required": true},
                    {"type": "string", "description": "Role key, see /roles", "name": "jobRole", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.intakeResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "422": {"description": "Резюме не удалось разобрать", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "502": {"description": "Модель оценки недоступна или ответила некорректно", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            }
        },
        "/hr/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Recruiter login",
                "parameters": [
                    {"description": "login payload", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.loginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            }
        },
        "/hr/candidates": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["candidates"],
                "summary": "List candidates",
                "parameters": [
                    {"type": "string", "description": "Role key or all", "name": "role", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.candidatesResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            }
        },
        "/hr/candidates/top": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["candidates"],
                "summary": "Top candidates",
                "parameters": [
                    {"type": "integer", "default": 10, "description": "Max items (1..200)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.candidatesResponse"}}
                }
            }
        },
        "/hr/candidates/export": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "tags": ["candidates"],
                "summary": "Export candidates",
                "parameters": [
                    {"type": "string", "description": "Role key or all", "name": "role", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}}
                }
            }
        },
        "/hr/candidates/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["candidates"],
                "summary": "Get candidate",
                "parameters": [
                    {"type": "integer", "description": "Candidate id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/candidate.Record"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            }
        },
        "/hr/candidates/{id}/stage": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["candidates"],
                "summary": "Move candidate to a stage",
                "parameters": [
                    {"type": "integer", "description": "Candidate id", "name": "id", "in": "path", "required": true},
                    {"description": "new stage: new, reviewing or decision", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.stageRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            }
        },
        "/hr/board": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["candidates"],
                "summary": "Pipeline board",
                "parameters": [
                    {"type": "string", "description": "Role key or all", "name": "role", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "array", "items": {"$ref": "#/definitions/pipeline.Column"}}}}
                }
            }
        },
        "/hr/stats": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["candidates"],
                "summary": "Dashboard statistics",
                "parameters": [
                    {"type": "string", "description": "Role key or all", "name": "role", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/candidate.Stats"}}
                }
            }
        }
    },
    "definitions": {
        "candidate.Candidate": {
            "type": "object",
            "properties": {
                "name": {"$ref": "#/definitions/candidate.Name"},
                "emails": {"type": "array", "items": {"type": "string"}},
                "phones": {"type": "array", "items": {"type": "string"}},
                "summary": {"type": "string"},
                "totalYearsExperience": {"type": "number"},
                "workExperience": {"type": "array", "items": {"$ref": "#/definitions/candidate.WorkExperience"}},
                "education": {"type": "array", "items": {"$ref": "#/definitions/candidate.Education"}},
                "skills": {"type": "array", "items": {"$ref": "#/definitions/candidate.Skill"}}
            }
        },
        "candidate.DateRange": {
            "type": "object",
            "properties": {
                "start": {"type": "string"},
                "end": {"type": "string"},
                "isCurrent": {"type": "boolean"}
            }
        },
        "candidate.Education": {
            "type": "object",
            "properties": {
                "accreditation": {"type": "string"},
                "level": {"type": "string"}
            }
        },
        "candidate.Evaluation": {
            "type": "object",
            "properties": {
                "overallScore": {"type": "number"},
                "roleSuitability": {"type": "array", "items": {"$ref": "#/definitions/candidate.RoleSuitability"}},
                "strengths": {"type": "array", "items": {"type": "string"}},
                "weaknesses": {"type": "array", "items": {"type": "string"}},
                "skillGaps": {"type": "array", "items": {"type": "string"}},
                "recommendation": {"type": "string", "enum": ["strong", "moderate", "weak"]},
                "evaluationSummary": {"type": "string"}
            }
        },
        "candidate.Name": {
            "type": "object",
            "properties": {
                "first": {"type": "string"},
                "family": {"type": "string"}
            }
        },
        "candidate.Record": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "candidate": {"$ref": "#/definitions/candidate.Candidate"},
                "appliedRole": {"type": "string"},
                "evaluation": {"$ref": "#/definitions/candidate.Evaluation"},
                "overallScore": {"type": "number"},
                "recommendation": {"type": "string"},
                "stage": {"type": "string", "enum": ["new", "reviewing", "decision"]},
                "createdAt": {"type": "string"}
            }
        },
        "candidate.RoleSuitability": {
            "type": "object",
            "properties": {
                "role": {"type": "string"},
                "score": {"type": "number"},
                "reasoning": {"type": "string"}
            }
        },
        "candidate.Skill": {
            "type": "object",
            "properties": {
                "name": {"type": "string"}
            }
        },
        "candidate.Stats": {
            "type": "object",
            "properties": {
                "total": {"type": "integer"},
                "avgScore": {"type": "integer"},
                "highScorers": {"type": "integer"},
                "byStage": {"type": "object", "additionalProperties": {"type": "integer"}}
            }
        },
        "candidate.WorkExperience": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "organization": {"type": "string"},
                "dateRange": {"$ref": "#/definitions/candidate.DateRange"},
                "description": {"type": "string"}
            }
        },
        "handlers.candidatesResponse": {
            "type": "object",
            "properties": {
                "candidates": {"type": "array", "items": {"$ref": "#/definitions/candidate.Record"}}
            }
        },
        "handlers.intakeResponse": {
            "type": "object",
            "properties": {
                "candidateId": {"type": "integer"},
                "data": {"$ref": "#/definitions/candidate.Candidate"},
                "evaluation": {"$ref": "#/definitions/candidate.Evaluation"},
                "evaluatedFor": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "handlers.loginRequest": {
            "type": "object",
            "required": ["password"],
            "properties": {
                "password": {"type": "string"}
            }
        },
        "handlers.loginResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"}
            }
        },
        "handlers.stageRequest": {
            "type": "object",
            "required": ["onboardingStage"],
            "properties": {
                "onboardingStage": {"type": "string"}
            }
        },
        "health.Report": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "checks": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "jobdesc.Role": {
            "type": "object",
            "properties": {
                "key": {"type": "string"},
                "label": {"type": "string"}
            }
        },
        "pipeline.Column": {
            "type": "object",
            "properties": {
                "stage": {"type": "string"},
                "title": {"type": "string"},
                "candidates": {"type": "array", "items": {"$ref": "#/definitions/candidate.Record"}}
            }
        },
        "presenter.ErrorResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "code": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Токен авторизации. Поддерживаются форматы: \"Bearer <JWT>\" или \"<JWT>\".",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http"},
	Title:            "hrboard API",
	Description:      "Приём резюме, оценка кандидатов LLM-моделью под выбранную вакансию и канбан-доска рекрутера.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
