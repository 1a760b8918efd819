package llm

// Request types returned by the model's tool invocations.
const (
	RequestTypeDesign  = "application_design"
	RequestTypeGeneric = "generic_request"
)

// ToolResult is the structured input of a tool invocation. Design is
// populated only for application_design results.
type ToolResult struct {
	RequestType string
	Response    string
	Design      *Design
}

// Design is a structured application design produced by the model.
type Design struct {
	RequestType string             `json:"request_type"`
	Application ApplicationDetails `json:"application_details"`
	Entities    []Entity           `json:"entities"`
	Response    string             `json:"response"`
}

// ApplicationDetails names and describes the designed application.
type ApplicationDetails struct {
	Name        string `json:"applicationName"`
	Description string `json:"applicationDescription"`
	TablePrefix string `json:"applicationTablePrefix"`
}

// Entity is one designed entity with its attributes.
type Entity struct {
	Name       string      `json:"entityName"`
	IsUser     bool        `json:"entityIsAUser"`
	Attributes []Attribute `json:"attributes"`
}

// Attribute is one field of an entity.
type Attribute struct {
	Name          string     `json:"attributeName"`
	DataType      string     `json:"attributeDataType"`
	CanBeUserName bool       `json:"attributeCanBeUserName"`
	IsPrimaryKey  bool       `json:"isPrimaryKey"`
	ForeignKey    ForeignKey `json:"foreignKey"`
}

// ForeignKey describes an attribute's reference to another entity. The
// reference fields carry "NA" when the attribute is not a foreign key; the
// field spellings match the wire schema.
type ForeignKey struct {
	IsForeignKey       bool   `json:"isForeignKey"`
	ReferenceEntity    string `json:"foreignKeyRefrenceEntity"`
	ReferenceAttribute string `json:"foreignKeyRefrenceAttribute"`
}

type tool struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"input_schema"`
}

// toolSchemas returns the two tool definitions offered on every call: a
// structured application design and a plain conversational response.
func toolSchemas() []tool {
	return []tool{
		{
			Name:        RequestTypeDesign,
			Description: "Design an application based on the user's requirements.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"request_type": map[string]any{
						"type":        "string",
						"description": "The type of request. Always set to 'application_design'.",
						"enum":        []string{RequestTypeDesign},
					},
					"application_details": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"applicationName": map[string]any{
								"type":        "string",
								"description": "A name that suits the app in Capitalized case, at most 3 words. Example: UserManagementPortal",
							},
							"applicationDescription": map[string]any{
								"type":        "string",
								"description": "A one or two line short description of the app.",
								"maxLength":   50,
							},
							"applicationTablePrefix": map[string]any{
								"type":        "string",
								"description": "A unique 3 or 4 letter prefix for the application, example UMPL for UserManagementPortal.",
								"maxLength":   4,
							},
						},
					},
					"entities": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"entityName": map[string]any{
									"type":        "string",
									"description": "The name of the entity.",
								},
								"entityIsAUser": map[string]any{
									"type":        "boolean",
									"description": "Whether the entity is a kind of user on the app, used to set up authentication.",
								},
								"attributes": map[string]any{
									"type": "array",
									"items": map[string]any{
										"type": "object",
										"properties": map[string]any{
											"attributeName": map[string]any{
												"type":        "string",
												"description": "The name of the attribute.",
											},
											"attributeDataType": map[string]any{
												"type":        "string",
												"description": "The data type of the attribute.",
											},
											"attributeCanBeUserName": map[string]any{
												"type":        "boolean",
												"description": "Whether the attribute can be used as a username for authentication.",
											},
											"isPrimaryKey": map[string]any{
												"type":        "boolean",
												"description": "Whether the attribute is the primary key for the entity.",
											},
											"foreignKey": map[string]any{
												"type": "object",
												"properties": map[string]any{
													"isForeignKey": map[string]any{
														"type":        "boolean",
														"description": "Whether the attribute is a foreign key.",
													},
													"foreignKeyRefrenceEntity": map[string]any{
														"type":        "string",
														"description": "The entity the attribute references. Return NA if not applicable. Always return a value.",
													},
													"foreignKeyRefrenceAttribute": map[string]any{
														"type":        "string",
														"description": "The attribute the foreign key references. Return NA if not applicable. Always return a value.",
													},
												},
												"required": []string{"isForeignKey", "foreignKeyRefrenceEntity", "foreignKeyRefrenceAttribute"},
											},
										},
										"required": []string{"attributeName", "attributeCanBeUserName", "attributeDataType", "isPrimaryKey", "foreignKey"},
									},
								},
							},
							"required": []string{"entityName", "entityIsAUser", "attributes"},
						},
					},
					"response": map[string]any{
						"type":        "string",
						"description": "The response to the user summarizing the application design, highlighting only very important details and asking for feedback.",
						"maxLength":   500,
					},
				},
				"required": []string{"request_type", "entities", "response"},
			},
		},
		{
			Name:        RequestTypeGeneric,
			Description: "Helps to interact with the user.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"request_type": map[string]any{
						"type":        "string",
						"description": "The type of request. Always set to 'generic_request'.",
						"enum":        []string{RequestTypeGeneric},
					},
					"response": map[string]any{
						"type":        "string",
						"description": "The response to the user.",
						"maxLength":   500,
					},
				},
				"required": []string{"request_type", "response"},
			},
		},
	}
}
