// Package docs holds the Swagger 2.0 document of the API, built from the
// annotations of the handlers. Regenerate it with swag init after changing them.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "basePath": "{{.BasePath}}",
    "definitions": {
        "healthz.Response": {
            "properties": {
                "error": {
                    "description": "The error, if any occurred",
                    "example": "the database cannot be accessed",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "ledger.CategoryTotal": {
            "properties": {
                "categoryId": {
                    "description": "ID of the category",
                    "example": "5ab6d2c4-0fd2-4c4e-9a4e-2c1c1d0f0e0a",
                    "format": "uuid",
                    "type": "string"
                },
                "color": {
                    "description": "Display color of the category",
                    "example": "#ef4444",
                    "type": "string"
                },
                "name": {
                    "description": "Name of the category",
                    "example": "Groceries",
                    "type": "string"
                },
                "total": {
                    "description": "Sum of all expenses in the category",
                    "example": 150,
                    "type": "number"
                }
            },
            "type": "object"
        },
        "ledger.GoalProgress": {
            "properties": {
                "percent": {
                    "description": "Uncapped percentage of the target saved",
                    "example": 150,
                    "type": "number"
                },
                "percentCapped": {
                    "description": "Percentage capped at 100 for display",
                    "example": 100,
                    "type": "number"
                },
                "remaining": {
                    "description": "Amount still missing, never negative",
                    "example": 0,
                    "type": "number"
                }
            },
            "type": "object"
        },
        "ledger.Rollup": {
            "properties": {
                "balance": {
                    "description": "Income minus expense",
                    "example": 2800,
                    "type": "number"
                },
                "count": {
                    "description": "Number of transactions in the window",
                    "example": 3,
                    "type": "integer"
                },
                "expense": {
                    "description": "Sum of all expense transactions",
                    "example": 200,
                    "type": "number"
                },
                "income": {
                    "description": "Sum of all income transactions",
                    "example": 3000,
                    "type": "number"
                }
            },
            "type": "object"
        },
        "ledger.Summary": {
            "properties": {
                "balance": {
                    "description": "Income minus expense",
                    "example": 2800,
                    "type": "number"
                },
                "expense": {
                    "description": "Sum of all expense transactions",
                    "example": 200,
                    "type": "number"
                },
                "income": {
                    "description": "Sum of all income transactions",
                    "example": 3000,
                    "type": "number"
                }
            },
            "type": "object"
        },
        "root.Links": {
            "properties": {
                "docs": {
                    "description": "Interactive API documentation",
                    "example": "https://ft.example.com/api/docs/index.html",
                    "type": "string"
                },
                "healthz": {
                    "description": "Health of the backend and its database",
                    "example": "https://ft.example.com/api/healthz",
                    "type": "string"
                },
                "metrics": {
                    "description": "Prometheus metrics",
                    "example": "https://ft.example.com/api/metrics",
                    "type": "string"
                },
                "v1": {
                    "description": "Finance tracker API, requires authentication",
                    "example": "https://ft.example.com/api/v1",
                    "type": "string"
                },
                "version": {
                    "description": "Version of the running backend",
                    "example": "https://ft.example.com/api/version",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "root.Response": {
            "properties": {
                "links": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/root.Links"
                        }
                    ],
                    "description": "Links to all top level endpoints"
                }
            },
            "type": "object"
        },
        "v1.Category": {
            "properties": {
                "color": {
                    "description": "Color used in charts, formatted as #rrggbb",
                    "example": "#ef4444",
                    "type": "string"
                },
                "createdAt": {
                    "description": "Time the resource was created",
                    "example": "2024-04-02T19:28:44.491514Z",
                    "type": "string"
                },
                "id": {
                    "description": "UUID for the resource",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce",
                    "format": "uuid",
                    "type": "string"
                },
                "kind": {
                    "description": "Either income or expense",
                    "example": "expense",
                    "type": "string"
                },
                "links": {
                    "$ref": "#/definitions/v1.CategoryLinks"
                },
                "name": {
                    "description": "Name of the category",
                    "example": "Groceries",
                    "type": "string"
                },
                "updatedAt": {
                    "description": "Last time the resource was updated",
                    "example": "2024-04-17T20:14:01.048145Z",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "v1.CategoryCreateResponse": {
            "properties": {
                "data": {
                    "description": "List of created Categories",
                    "items": {
                        "$ref": "#/definitions/v1.CategoryResponse"
                    },
                    "type": "array"
                },
                "error": {
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "v1.CategoryEditable": {
            "properties": {
                "color": {
                    "description": "Color used in charts, formatted as #rrggbb",
                    "example": "#ef4444",
                    "type": "string"
                },
                "kind": {
                    "description": "Either income or expense",
                    "example": "expense",
                    "type": "string"
                },
                "name": {
                    "description": "Name of the category",
                    "example": "Groceries",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "v1.CategoryLinks": {
            "properties": {
                "self": {
                    "description": "The category itself",
                    "example": "https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f",
                    "type": "string"
                },
                "transactions": {
                    "description": "The category's transactions",
                    "example": "https://example.com/api/v1/transactions?category=3b1ea324-d438-4419-882a-2fc91d71772f",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "v1.CategoryListResponse": {
            "properties": {
                "data": {
                    "description": "List of Categories",
                    "items": {
                        "$ref": "#/definitions/v1.Category"
                    },
                    "type": "array"
                },
                "error": {
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "v1.CategoryResponse": {
            "properties": {
                "data": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Category"
                        }
                    ],
                    "description": "Data for the Category"
                },
                "error": {
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "v1.Contribution": {
            "properties": {
                "amount": {
                    "description": "Must be larger than zero",
                    "example": "250",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "v1.Dashboard": {
            "properties": {
                "savingsGoals": {
                    "description": "Progress of all savings goals",
                    "items": {
                        "$ref": "#/definitions/v1.GoalProgress"
                    },
                    "type": "array"
                },
                "spendingByCategory": {
                    "description": "Expenses per category of the range",
                    "items": {
                        "$ref": "#/definitions/ledger.CategoryTotal"
                    },
                    "type": "array"
                },
                "summary": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/ledger.Summary"
                        }
                    ],
                    "description": "Income, expense and balance of the range"
                },
                "weeklySummary": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/ledger.Rollup"
                        }
                    ],
                    "description": "Summary of the last seven days, independent of the range"
                }
            },
            "type": "object"
        },
        "v1.DashboardResponse": {
            "properties": {
                "data": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Dashboard"
                        }
                    ],
                    "description": "All reports"
                },
                "error": {
                    "description": "The error, if any occurred",
                    "example": "the date range is invalid",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "v1.GoalProgress": {
            "properties": {
                "goalId": {
                    "description": "ID of the savings goal",
                    "example": "9ef3f4a2-7b2a-4f5e-8a06-07e2b1f01c2a",
                    "format": "uuid",
                    "type": "string"
                },
                "name": {
                    "description": "Name of the savings goal",
                    "example": "Emergency Fund",
                    "type": "string"
                },
                "percent": {
                    "description": "Uncapped percentage of the target saved",
                    "example": 150,
                    "type": "number"
                },
                "percentCapped": {
                    "description": "Percentage capped at 100 for display",
                    "example": 100,
                    "type": "number"
                },
                "remaining": {
                    "description": "Amount still missing, never negative",
                    "example": 0,
                    "type": "number"
                }
            },
            "type": "object"
        },
        "v1.GoalProgressListResponse": {
            "properties": {
                "data": {
                    "description": "Progress of all savings goals, newest goal first",
                    "items": {
                        "$ref": "#/definitions/v1.GoalProgress"
                    },
                    "type": "array"
                },
                "error": {
                    "description": "The error, if any occurred",
                    "example": "an error occurred on the server during your request",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "v1.Links": {
            "properties": {
                "categories": {
                    "description": "URL of category list endpoint",
                    "example": "https://example.com/api/v1/categories",
                    "type": "string"
                },
                "charts": {
                    "description": "Chart of the expenses per category",
                    "example": "https://example.com/api/v1/charts/spending-by-category.png",
                    "type": "string"
                },
                "dashboard": {
                    "description": "All reports in one response",
                    "example": "https://example.com/api/v1/dashboard",
                    "type": "string"
                },
                "goalProgress": {
                    "description": "Progress of all savings goals",
                    "example": "https://example.com/api/v1/savings-goals/progress",
                    "type": "string"
                },
                "me": {
                    "description": "The authenticated user",
                    "example": "https://example.com/api/v1/me",
                    "type": "string"
                },
                "savingsGoals": {
                    "description": "URL of savings goal list endpoint",
                    "example": "https://example.com/api/v1/savings-goals",
                    "type": "string"
                },
                "spendingByCategory": {
                    "description": "Expenses per category",
                    "example": "https://example.com/api/v1/spending-by-category",
                    "type": "string"
                },
                "summary": {
                    "description": "Income, expense and balance",
                    "example": "https://example.com/api/v1/summary",
                    "type": "string"
                },
                "transactions": {
                    "description": "URL of transaction list endpoint",
                    "example": "https://example.com/api/v1/transactions",
                    "type": "string"
                },
                "weeklySummary": {
                    "description": "Summary of the last seven days",
                    "example": "https://example.com/api/v1/weekly-summary",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "v1.Response": {
            "properties": {
                "links": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Links"
                        }
                    ],
                    "description": "Links for the v1 API"
                }
            },
            "type": "object"
        },
        "v1.SavingsGoal": {
            "properties": {
                "createdAt": {
                    "description": "Time the resource was created",
                    "example": "2024-04-02T19:28:44.491514Z",
                    "type": "string"
                },
                "currentAmount": {
                    "description": "The amount saved so far. May exceed the target",
                    "example": "2500",
                    "type": "string"
                },
                "deadline": {
                    "description": "Date the goal should be reached by, optional",
                    "example": "2025-05-17",
                    "type": "string"
                },
                "id": {
                    "description": "UUID for the resource",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce",
                    "format": "uuid",
                    "type": "string"
                },
                "links": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.SavingsGoalLinks"
                        }
                    ],
                    "description": "Links to related resources"
                },
                "name": {
                    "description": "Name of the goal",
                    "example": "Emergency Fund",
                    "type": "string"
                },
                "progress": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/ledger.GoalProgress"
                        }
                    ],
                    "description": "Progress towards the target amount"
                },
                "targetAmount": {
                    "description": "The amount to save up to. Must be larger than zero",
                    "example": "10000",
                    "type": "string"
                },
                "updatedAt": {
                    "description": "Last time the resource was updated",
                    "example": "2024-04-17T20:14:01.048145Z",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "v1.SavingsGoalCreateResponse": {
            "properties": {
                "data": {
                    "description": "List of created savings goals",
                    "items": {
                        "$ref": "#/definitions/v1.SavingsGoalResponse"
                    },
                    "type": "array"
                },
                "error": {
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "v1.SavingsGoalEditable": {
            "properties": {
                "currentAmount": {
                    "description": "The amount saved so far. May exceed the target",
                    "example": "2500",
                    "type": "string"
                },
                "deadline": {
                    "description": "Date the goal should be reached by, optional",
                    "example": "2025-05-17",
                    "type": "string"
                },
                "name": {
                    "description": "Name of the goal",
                    "example": "Emergency Fund",
                    "type": "string"
                },
                "targetAmount": {
                    "description": "The amount to save up to. Must be larger than zero",
                    "example": "10000",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "v1.SavingsGoalLinks": {
            "properties": {
                "contributions": {
                    "description": "Endpoint to add to the current amount",
                    "example": "https://example.com/api/v1/savings-goals/9ef3f4a2-7b2a-4f5e-8a06-07e2b1f01c2a/contributions",
                    "type": "string"
                },
                "self": {
                    "description": "The goal itself",
                    "example": "https://example.com/api/v1/savings-goals/9ef3f4a2-7b2a-4f5e-8a06-07e2b1f01c2a",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "v1.SavingsGoalListResponse": {
            "properties": {
                "data": {
                    "description": "List of savings goals",
                    "items": {
                        "$ref": "#/definitions/v1.SavingsGoal"
                    },
                    "type": "array"
                },
                "error": {
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "v1.SavingsGoalResponse": {
            "properties": {
                "data": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.SavingsGoal"
                        }
                    ],
                    "description": "Data for the savings goal"
                },
                "error": {
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "v1.SpendingByCategoryResponse": {
            "properties": {
                "data": {
                    "description": "Expenses per category, highest first",
                    "items": {
                        "$ref": "#/definitions/ledger.CategoryTotal"
                    },
                    "type": "array"
                },
                "error": {
                    "description": "The error, if any occurred",
                    "example": "the date range is invalid",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "v1.SummaryResponse": {
            "properties": {
                "data": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/ledger.Summary"
                        }
                    ],
                    "description": "Income, expense and balance of the range"
                },
                "error": {
                    "description": "The error, if any occurred",
                    "example": "the date range is invalid",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "v1.Transaction": {
            "properties": {
                "amount": {
                    "description": "The amount. Must be larger than zero",
                    "example": "14.03",
                    "type": "string"
                },
                "category": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.TransactionCategory"
                        }
                    ],
                    "description": "The category of the transaction"
                },
                "categoryId": {
                    "description": "ID of the category. Its kind defines if the transaction is an income or an expense",
                    "example": "3b1ea324-d438-4419-882a-2fc91d71772f",
                    "format": "uuid",
                    "type": "string"
                },
                "createdAt": {
                    "description": "Time the resource was created",
                    "example": "2022-04-02T19:28:44.491514Z",
                    "type": "string"
                },
                "date": {
                    "description": "Date of the transaction. Defaults to today",
                    "example": "2024-02-03",
                    "type": "string"
                },
                "description": {
                    "description": "A description of the transaction",
                    "example": "Weekly groceries",
                    "type": "string"
                },
                "id": {
                    "description": "UUID for the resource",
                    "example": "6ac2b5b5-bbb2-4b20-ba05-4fd8ac0ba3a3",
                    "format": "uuid",
                    "type": "string"
                },
                "links": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.TransactionLinks"
                        }
                    ],
                    "description": "Links to related resources"
                }
            },
            "type": "object"
        },
        "v1.TransactionCategory": {
            "properties": {
                "color": {
                    "description": "Color of the category",
                    "example": "#ef4444",
                    "type": "string"
                },
                "kind": {
                    "description": "Kind of the category",
                    "example": "expense",
                    "type": "string"
                },
                "name": {
                    "description": "Name of the category",
                    "example": "Groceries",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "v1.TransactionCreateResponse": {
            "properties": {
                "data": {
                    "description": "List of created transactions",
                    "items": {
                        "$ref": "#/definitions/v1.TransactionResponse"
                    },
                    "type": "array"
                },
                "error": {
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "v1.TransactionEditable": {
            "properties": {
                "amount": {
                    "description": "The amount. Must be larger than zero",
                    "example": "14.03",
                    "type": "string"
                },
                "categoryId": {
                    "description": "ID of the category. Its kind defines if the transaction is an income or an expense",
                    "example": "3b1ea324-d438-4419-882a-2fc91d71772f",
                    "format": "uuid",
                    "type": "string"
                },
                "date": {
                    "description": "Date of the transaction. Defaults to today",
                    "example": "2024-02-03",
                    "type": "string"
                },
                "description": {
                    "description": "A description of the transaction",
                    "example": "Weekly groceries",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "v1.TransactionLinks": {
            "properties": {
                "category": {
                    "description": "The category of the transaction",
                    "example": "https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f",
                    "type": "string"
                },
                "self": {
                    "description": "The transaction itself",
                    "example": "https://example.com/api/v1/transactions/6ac2b5b5-bbb2-4b20-ba05-4fd8ac0ba3a3",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "v1.TransactionListResponse": {
            "properties": {
                "data": {
                    "description": "List of transactions",
                    "items": {
                        "$ref": "#/definitions/v1.Transaction"
                    },
                    "type": "array"
                },
                "error": {
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "v1.TransactionResponse": {
            "properties": {
                "data": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Transaction"
                        }
                    ],
                    "description": "Data for the transaction"
                },
                "error": {
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "v1.User": {
            "properties": {
                "createdAt": {
                    "description": "Time the resource was created",
                    "example": "2024-04-02T19:28:44.491514Z",
                    "type": "string"
                },
                "email": {
                    "description": "Email address of the user",
                    "example": "demo@example.com",
                    "type": "string"
                },
                "id": {
                    "description": "UUID for the resource",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce",
                    "format": "uuid",
                    "type": "string"
                },
                "updatedAt": {
                    "description": "Last time the resource was updated",
                    "example": "2024-04-17T20:14:01.048145Z",
                    "type": "string"
                },
                "username": {
                    "description": "Name used to log in",
                    "example": "demo",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "v1.UserResponse": {
            "properties": {
                "data": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.User"
                        }
                    ],
                    "description": "Data for the user"
                },
                "error": {
                    "description": "The error, if any occurred",
                    "example": "an error occurred on the server during your request",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "v1.WeeklySummaryResponse": {
            "properties": {
                "data": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/ledger.Rollup"
                        }
                    ],
                    "description": "Summary of the last seven days"
                },
                "error": {
                    "description": "The error, if any occurred",
                    "example": "an error occurred on the server during your request",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "v1.httpError": {
            "properties": {
                "error": {
                    "example": "An ID specified in the query string was not a valid UUID",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "version.Object": {
            "properties": {
                "goVersion": {
                    "description": "Go toolchain the backend was built with",
                    "example": "go1.22.1",
                    "type": "string"
                },
                "version": {
                    "description": "Release of the backend",
                    "example": "1.1.0",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "version.Response": {
            "properties": {
                "data": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/version.Object"
                        }
                    ],
                    "description": "Version information"
                }
            },
            "type": "object"
        }
    },
    "host": "{{.Host}}",
    "info": {
        "contact": {},
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "paths": {
        "/": {
            "get": {
                "description": "Lists the top level endpoints of the finance tracker",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/root.Response"
                        }
                    }
                },
                "summary": "API root",
                "tags": [
                    "General"
                ]
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                },
                "summary": "Allowed HTTP verbs",
                "tags": [
                    "General"
                ]
            }
        },
        "/healthz": {
            "get": {
                "description": "Returns the application health and, if not healthy, an error",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/healthz.Response"
                        }
                    }
                },
                "summary": "Get health",
                "tags": [
                    "General"
                ]
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                },
                "summary": "Allowed HTTP verbs",
                "tags": [
                    "General"
                ]
            }
        },
        "/v1": {
            "get": {
                "description": "Returns general information about the v1 API",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.Response"
                        }
                    }
                },
                "security": [
                    {
                        "BasicAuth": []
                    }
                ],
                "summary": "v1 API",
                "tags": [
                    "v1"
                ]
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                },
                "security": [
                    {
                        "BasicAuth": []
                    }
                ],
                "summary": "Allowed HTTP verbs",
                "tags": [
                    "v1"
                ]
            }
        },
        "/v1/categories": {
            "get": {
                "description": "Returns the categories of the authenticated user ordered by name",
                "parameters": [
                    {
                        "description": "Filter by kind",
                        "in": "query",
                        "name": "kind",
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryListResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryListResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BasicAuth": []
                    }
                ],
                "summary": "Get categories",
                "tags": [
                    "Categories"
                ]
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                },
                "security": [
                    {
                        "BasicAuth": []
                    }
                ],
                "summary": "Allowed HTTP verbs",
                "tags": [
                    "Categories"
                ]
            },
            "post": {
                "description": "Creates new categories",
                "parameters": [
                    {
                        "description": "Categories",
                        "in": "body",
                        "name": "categories",
                        "required": true,
                        "schema": {
                            "items": {
                                "$ref": "#/definitions/v1.CategoryEditable"
                            },
                            "type": "array"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryCreateResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryCreateResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryCreateResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BasicAuth": []
                    }
                ],
                "summary": "Create categories",
                "tags": [
                    "Categories"
                ]
            }
        },
        "/v1/categories/{id}": {
            "delete": {
                "description": "Deletes a category together with all its transactions",
                "parameters": [
                    {
                        "description": "ID formatted as string",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                },
                "security": [
                    {
                        "BasicAuth": []
                    }
                ],
                "summary": "Delete category",
                "tags": [
                    "Categories"
                ]
            },
            "get": {
                "description": "Returns a specific category",
                "parameters": [
                    {
                        "description": "ID formatted as string",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BasicAuth": []
                    }
                ],
                "summary": "Get category",
                "tags": [
                    "Categories"
                ]
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "parameters": [
                    {
                        "description": "ID formatted as string",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                },
                "security": [
                    {
                        "BasicAuth": []
                    }
                ],
                "summary": "Allowed HTTP verbs",
                "tags": [
                    "Categories"
                ]
            },
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "description": "Updates an existing category. Only values to be updated need to be specified. The kind cannot be changed while transactions reference the category.",
                "parameters": [
                    {
                        "description": "ID formatted as string",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Category",
                        "in": "body",
                        "name": "category",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryEditable"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BasicAuth": []
                    }
                ],
                "summary": "Update category",
                "tags": [
                    "Categories"
                ]
            }
        },
        "/v1/charts/spending-by-category.png": {
            "get": {
                "description": "Returns a PNG donut chart of the expenses per category for the date range",
                "parameters": [
                    {
                        "description": "First date to include, YYYY-MM-DD",
                        "in": "query",
                        "name": "startDate",
                        "type": "string"
                    },
                    {
                        "description": "Last date to include, YYYY-MM-DD",
                        "in": "query",
                        "name": "endDate",
                        "type": "string"
                    }
                ],
                "produces": [
                    "image/png"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                },
                "security": [
                    {
                        "BasicAuth": []
                    }
                ],
                "summary": "Spending by category chart",
                "tags": [
                    "Charts"
                ]
            }
        },
        "/v1/charts/summary.png": {
            "get": {
                "description": "Returns a PNG bar chart of income and expense for the date range",
                "parameters": [
                    {
                        "description": "First date to include, YYYY-MM-DD",
                        "in": "query",
                        "name": "startDate",
                        "type": "string"
                    },
                    {
                        "description": "Last date to include, YYYY-MM-DD",
                        "in": "query",
                        "name": "endDate",
                        "type": "string"
                    }
                ],
                "produces": [
                    "image/png"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                },
                "security": [
                    {
                        "BasicAuth": []
                    }
                ],
                "summary": "Summary chart",
                "tags": [
                    "Charts"
                ]
            }
        },
        "/v1/dashboard": {
            "get": {
                "description": "Returns the summary and the spending by category for the date range together with the weekly summary and the savings goal progress",
                "parameters": [
                    {
                        "description": "First date to include, YYYY-MM-DD",
                        "in": "query",
                        "name": "startDate",
                        "type": "string"
                    },
                    {
                        "description": "Last date to include, YYYY-MM-DD",
                        "in": "query",
                        "name": "endDate",
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.DashboardResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.DashboardResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.DashboardResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BasicAuth": []
                    }
                ],
                "summary": "Dashboard",
                "tags": [
                    "Reports"
                ]
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                },
                "security": [
                    {
                        "BasicAuth": []
                    }
                ],
                "summary": "Allowed HTTP verbs",
                "tags": [
                    "Reports"
                ]
            }
        },
        "/v1/me": {
            "get": {
                "description": "Returns the user the request is authenticated as",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.UserResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.UserResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.UserResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BasicAuth": []
                    }
                ],
                "summary": "Authenticated user",
                "tags": [
                    "Users"
                ]
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                },
                "security": [
                    {
                        "BasicAuth": []
                    }
                ],
                "summary": "Allowed HTTP verbs",
                "tags": [
                    "Users"
                ]
            }
        },
        "/v1/savings-goals": {
            "get": {
                "description": "Returns the savings goals of the authenticated user, newest first",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.SavingsGoalListResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.SavingsGoalListResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BasicAuth": []
                    }
                ],
                "summary": "Get savings goals",
                "tags": [
                    "Savings Goals"
                ]
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                },
                "security": [
                    {
                        "BasicAuth": []
                    }
                ],
                "summary": "Allowed HTTP verbs",
                "tags": [
                    "Savings Goals"
                ]
            },
            "post": {
                "description": "Creates new savings goals",
                "parameters": [
                    {
                        "description": "Savings goals",
                        "in": "body",
                        "name": "goals",
                        "required": true,
                        "schema": {
                            "items": {
                                "$ref": "#/definitions/v1.SavingsGoalEditable"
                            },
                            "type": "array"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.SavingsGoalCreateResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.SavingsGoalCreateResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.SavingsGoalCreateResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BasicAuth": []
                    }
                ],
                "summary": "Create savings goals",
                "tags": [
                    "Savings Goals"
                ]
            }
        },
        "/v1/savings-goals/progress": {
            "get": {
                "description": "Returns the progress of all savings goals",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.GoalProgressListResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.GoalProgressListResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BasicAuth": []
                    }
                ],
                "summary": "Savings goal progress",
                "tags": [
                    "Reports"
                ]
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                },
                "security": [
                    {
                        "BasicAuth": []
                    }
                ],
                "summary": "Allowed HTTP verbs",
                "tags": [
                    "Reports"
                ]
            }
        },
        "/v1/savings-goals/{id}": {
            "delete": {
                "description": "Deletes a savings goal",
                "parameters": [
                    {
                        "description": "ID formatted as string",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                },
                "security": [
                    {
                        "BasicAuth": []
                    }
                ],
                "summary": "Delete savings goal",
                "tags": [
                    "Savings Goals"
                ]
            },
            "get": {
                "description": "Returns a specific savings goal",
                "parameters": [
                    {
                        "description": "ID formatted as string",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.SavingsGoalResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.SavingsGoalResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.SavingsGoalResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.SavingsGoalResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BasicAuth": []
                    }
                ],
                "summary": "Get savings goal",
                "tags": [
                    "Savings Goals"
                ]
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "parameters": [
                    {
                        "description": "ID formatted as string",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                },
                "security": [
                    {
                        "BasicAuth": []
                    }
                ],
                "summary": "Allowed HTTP verbs",
                "tags": [
                    "Savings Goals"
                ]
            },
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "description": "Updates an existing savings goal. Only values to be updated need to be specified.",
                "parameters": [
                    {
                        "description": "ID formatted as string",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Savings goal",
                        "in": "body",
                        "name": "goal",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.SavingsGoalEditable"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.SavingsGoalResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.SavingsGoalResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.SavingsGoalResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.SavingsGoalResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BasicAuth": []
                    }
                ],
                "summary": "Update savings goal",
                "tags": [
                    "Savings Goals"
                ]
            }
        },
        "/v1/savings-goals/{id}/contributions": {
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "parameters": [
                    {
                        "description": "ID formatted as string",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                },
                "security": [
                    {
                        "BasicAuth": []
                    }
                ],
                "summary": "Allowed HTTP verbs",
                "tags": [
                    "Savings Goals"
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "description": "Adds the amount to the current amount of the savings goal",
                "parameters": [
                    {
                        "description": "ID formatted as string",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Contribution",
                        "in": "body",
                        "name": "contribution",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.Contribution"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.SavingsGoalResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.SavingsGoalResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.SavingsGoalResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.SavingsGoalResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BasicAuth": []
                    }
                ],
                "summary": "Contribute to savings goal",
                "tags": [
                    "Savings Goals"
                ]
            }
        },
        "/v1/spending-by-category": {
            "get": {
                "description": "Returns the expenses per category for the date range, highest total first",
                "parameters": [
                    {
                        "description": "First date to include, YYYY-MM-DD",
                        "in": "query",
                        "name": "startDate",
                        "type": "string"
                    },
                    {
                        "description": "Last date to include, YYYY-MM-DD",
                        "in": "query",
                        "name": "endDate",
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.SpendingByCategoryResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.SpendingByCategoryResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.SpendingByCategoryResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BasicAuth": []
                    }
                ],
                "summary": "Spending by category",
                "tags": [
                    "Reports"
                ]
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                },
                "security": [
                    {
                        "BasicAuth": []
                    }
                ],
                "summary": "Allowed HTTP verbs",
                "tags": [
                    "Reports"
                ]
            }
        },
        "/v1/summary": {
            "get": {
                "description": "Returns income, expense and balance for the date range. Without a range, all transactions are summarized.",
                "parameters": [
                    {
                        "description": "First date to include, YYYY-MM-DD",
                        "in": "query",
                        "name": "startDate",
                        "type": "string"
                    },
                    {
                        "description": "Last date to include, YYYY-MM-DD",
                        "in": "query",
                        "name": "endDate",
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.SummaryResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.SummaryResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.SummaryResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BasicAuth": []
                    }
                ],
                "summary": "Summary",
                "tags": [
                    "Reports"
                ]
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                },
                "security": [
                    {
                        "BasicAuth": []
                    }
                ],
                "summary": "Allowed HTTP verbs",
                "tags": [
                    "Reports"
                ]
            }
        },
        "/v1/transactions": {
            "get": {
                "description": "Returns the transactions of the authenticated user, newest first",
                "parameters": [
                    {
                        "description": "First date to include, YYYY-MM-DD",
                        "in": "query",
                        "name": "startDate",
                        "type": "string"
                    },
                    {
                        "description": "Last date to include, YYYY-MM-DD",
                        "in": "query",
                        "name": "endDate",
                        "type": "string"
                    },
                    {
                        "description": "Filter by category ID",
                        "in": "query",
                        "name": "category",
                        "type": "string"
                    },
                    {
                        "description": "Glob pattern matched against the description",
                        "in": "query",
                        "name": "search",
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionListResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionListResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BasicAuth": []
                    }
                ],
                "summary": "Get transactions",
                "tags": [
                    "Transactions"
                ]
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                },
                "security": [
                    {
                        "BasicAuth": []
                    }
                ],
                "summary": "Allowed HTTP verbs",
                "tags": [
                    "Transactions"
                ]
            },
            "post": {
                "description": "Creates new transactions",
                "parameters": [
                    {
                        "description": "Transactions",
                        "in": "body",
                        "name": "transactions",
                        "required": true,
                        "schema": {
                            "items": {
                                "$ref": "#/definitions/v1.TransactionEditable"
                            },
                            "type": "array"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionCreateResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionCreateResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionCreateResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BasicAuth": []
                    }
                ],
                "summary": "Create transactions",
                "tags": [
                    "Transactions"
                ]
            }
        },
        "/v1/transactions/{id}": {
            "delete": {
                "description": "Deletes a transaction",
                "parameters": [
                    {
                        "description": "ID formatted as string",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                },
                "security": [
                    {
                        "BasicAuth": []
                    }
                ],
                "summary": "Delete transaction",
                "tags": [
                    "Transactions"
                ]
            },
            "get": {
                "description": "Returns a specific transaction",
                "parameters": [
                    {
                        "description": "ID formatted as string",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BasicAuth": []
                    }
                ],
                "summary": "Get transaction",
                "tags": [
                    "Transactions"
                ]
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "parameters": [
                    {
                        "description": "ID formatted as string",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                },
                "security": [
                    {
                        "BasicAuth": []
                    }
                ],
                "summary": "Allowed HTTP verbs",
                "tags": [
                    "Transactions"
                ]
            },
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "description": "Updates an existing transaction. Only values to be updated need to be specified.",
                "parameters": [
                    {
                        "description": "ID formatted as string",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Transaction",
                        "in": "body",
                        "name": "transaction",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionEditable"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BasicAuth": []
                    }
                ],
                "summary": "Update transaction",
                "tags": [
                    "Transactions"
                ]
            }
        },
        "/v1/weekly-summary": {
            "get": {
                "description": "Returns income, expense, balance and number of transactions of the last seven days and today",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.WeeklySummaryResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.WeeklySummaryResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BasicAuth": []
                    }
                ],
                "summary": "Weekly summary",
                "tags": [
                    "Reports"
                ]
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                },
                "security": [
                    {
                        "BasicAuth": []
                    }
                ],
                "summary": "Allowed HTTP verbs",
                "tags": [
                    "Reports"
                ]
            }
        },
        "/version": {
            "get": {
                "description": "Returns the release and Go version of the backend",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/version.Response"
                        }
                    }
                },
                "summary": "API version",
                "tags": [
                    "General"
                ]
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                },
                "summary": "Allowed HTTP verbs",
                "tags": [
                    "General"
                ]
            }
        }
    },
    "schemes": {{ marshal .Schemes }},
    "securityDefinitions": {
        "BasicAuth": {
            "type": "basic"
        }
    },
    "swagger": "2.0"
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "Finance Tracker",
	Description:      "The backend for the finance tracker. Records income and expenses, tracks savings goals and reports on them.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
