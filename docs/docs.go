// Package docs metadatos OpenAPI de la API. Regenerar con: swag init -g cmd/api/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
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
        "/api/auth/login": {
            "post": {
                "tags": [
                    "auth"
                ],
                "summary": "Iniciar sesión",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Entrada inválida"
                    },
                    "401": {
                        "description": "No autorizado"
                    },
                    "403": {
                        "description": "Acceso denegado"
                    }
                },
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            }
        },
        "/api/tarifas": {
            "get": {
                "tags": [
                    "tarifas"
                ],
                "summary": "Listar tarifas",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            },
            "post": {
                "tags": [
                    "tarifas"
                ],
                "summary": "Crear tarifa",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Creado"
                    },
                    "400": {
                        "description": "Entrada inválida"
                    },
                    "403": {
                        "description": "Acceso denegado"
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            }
        },
        "/api/tarifas/activa": {
            "get": {
                "tags": [
                    "tarifas"
                ],
                "summary": "Tarifa activa",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "No encontrado"
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            }
        },
        "/api/tarifas/{id}": {
            "get": {
                "tags": [
                    "tarifas"
                ],
                "summary": "Obtener tarifa",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "No encontrado"
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            },
            "put": {
                "tags": [
                    "tarifas"
                ],
                "summary": "Actualizar tarifa",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Entrada inválida"
                    },
                    "404": {
                        "description": "No encontrado"
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            },
            "delete": {
                "tags": [
                    "tarifas"
                ],
                "summary": "Desactivar tarifa",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "204": {
                        "description": "Sin contenido"
                    },
                    "404": {
                        "description": "No encontrado"
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/api/tarifas/{id}/activar": {
            "post": {
                "tags": [
                    "tarifas"
                ],
                "summary": "Activar tarifa",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "No encontrado"
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/api/tickets": {
            "get": {
                "tags": [
                    "tickets"
                ],
                "summary": "Listar tickets",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            }
        },
        "/api/tickets/ingreso": {
            "post": {
                "tags": [
                    "tickets"
                ],
                "summary": "Registrar ingreso",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Creado"
                    },
                    "400": {
                        "description": "Entrada inválida"
                    },
                    "409": {
                        "description": "Conflicto"
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            }
        },
        "/api/tickets/{id}": {
            "get": {
                "tags": [
                    "tickets"
                ],
                "summary": "Obtener ticket",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "No encontrado"
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/api/tickets/{id}/salida": {
            "post": {
                "tags": [
                    "tickets"
                ],
                "summary": "Registrar salida",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "No encontrado"
                    },
                    "409": {
                        "description": "Conflicto"
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/api/tickets/{id}/recibo": {
            "get": {
                "tags": [
                    "tickets"
                ],
                "summary": "Comprobante PDF",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "No encontrado"
                    },
                    "409": {
                        "description": "Conflicto"
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/api/tickets/ingresos": {
            "get": {
                "tags": [
                    "reportes"
                ],
                "summary": "Ingresos agrupados",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "day | isoweek | month (vacío = las tres)",
                        "name": "granularidad",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "fecha de salida mínima (2006-01-02)",
                        "name": "desde",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "fecha de salida máxima, inclusiva (2006-01-02)",
                        "name": "hasta",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Entrada inválida"
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "name": "granularidad",
                        "in": "query"
                    }
                ]
            }
        },
        "/api/tickets/ocupacion": {
            "get": {
                "tags": [
                    "reportes"
                ],
                "summary": "Ocupación actual",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            }
        },
        "/api/tickets/comparativa": {
            "get": {
                "tags": [
                    "reportes"
                ],
                "summary": "Mensualidad contra invitado",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            }
        },
        "/api/tickets/export/csv": {
            "get": {
                "tags": [
                    "reportes"
                ],
                "summary": "Exportar CSV",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            }
        },
        "/api/tickets/export/excel": {
            "get": {
                "tags": [
                    "reportes"
                ],
                "summary": "Exportar Excel",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            }
        },
        "/api/mensualidades": {
            "get": {
                "tags": [
                    "mensualidades"
                ],
                "summary": "Listar mensualidades",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            },
            "post": {
                "tags": [
                    "mensualidades"
                ],
                "summary": "Crear mensualidad",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Creado"
                    },
                    "400": {
                        "description": "Entrada inválida"
                    },
                    "409": {
                        "description": "Conflicto"
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            }
        },
        "/api/mensualidades/{id}": {
            "get": {
                "tags": [
                    "mensualidades"
                ],
                "summary": "Obtener mensualidad",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "No encontrado"
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            },
            "put": {
                "tags": [
                    "mensualidades"
                ],
                "summary": "Actualizar mensualidad",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Entrada inválida"
                    },
                    "404": {
                        "description": "No encontrado"
                    },
                    "409": {
                        "description": "Conflicto"
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            },
            "delete": {
                "tags": [
                    "mensualidades"
                ],
                "summary": "Desactivar mensualidad",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "204": {
                        "description": "Sin contenido"
                    },
                    "404": {
                        "description": "No encontrado"
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/api/mensualidades/enviar-recordatorios": {
            "post": {
                "tags": [
                    "mensualidades"
                ],
                "summary": "Enviar recordatorios",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            }
        },
        "/api/notificaciones": {
            "get": {
                "tags": [
                    "notificaciones"
                ],
                "summary": "Listar notificaciones",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            }
        },
        "/api/notificaciones/enviar-creacion/{idMensualidad}": {
            "post": {
                "tags": [
                    "notificaciones"
                ],
                "summary": "Notificar creación",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Creado"
                    },
                    "404": {
                        "description": "No encontrado"
                    },
                    "409": {
                        "description": "Conflicto"
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "name": "idMensualidad",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/api/notificaciones/enviar-vencimientos": {
            "post": {
                "tags": [
                    "notificaciones"
                ],
                "summary": "Notificar vencimientos",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            }
        },
        "/api/operadores": {
            "get": {
                "tags": [
                    "operadores"
                ],
                "summary": "Listar operadores",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "403": {
                        "description": "Acceso denegado"
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            },
            "post": {
                "tags": [
                    "operadores"
                ],
                "summary": "Crear operador",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Creado"
                    },
                    "400": {
                        "description": "Entrada inválida"
                    },
                    "403": {
                        "description": "Acceso denegado"
                    },
                    "409": {
                        "description": "Conflicto"
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            }
        },
        "/api/operadores/{id}": {
            "get": {
                "tags": [
                    "operadores"
                ],
                "summary": "Obtener operador",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "No encontrado"
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            },
            "put": {
                "tags": [
                    "operadores"
                ],
                "summary": "Actualizar operador",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Entrada inválida"
                    },
                    "404": {
                        "description": "No encontrado"
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            },
            "delete": {
                "tags": [
                    "operadores"
                ],
                "summary": "Eliminar operador",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "204": {
                        "description": "Sin contenido"
                    },
                    "404": {
                        "description": "No encontrado"
                    },
                    "409": {
                        "description": "Conflicto"
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/api/pagos": {
            "get": {
                "tags": [
                    "pagos"
                ],
                "summary": "Listar pagos",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "name": "ticket_id",
                        "in": "query"
                    }
                ]
            }
        },
        "/api/pagos/{id}": {
            "get": {
                "tags": [
                    "pagos"
                ],
                "summary": "Obtener pago",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "No encontrado"
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/api/dashboard": {
            "get": {
                "tags": [
                    "dashboard"
                ],
                "summary": "Resumen del parqueadero",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            }
        }
    },
    "securityDefinitions": {
        "Bearer": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo información exportada del documento.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "CrudPark API",
	Description:      "Tarifas, tickets, mensualidades y reportes del parqueadero.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
