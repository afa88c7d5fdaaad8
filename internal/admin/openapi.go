package admin

import (
	"net/http"

	"github.com/go-openapi/spec"
	"github.com/tinnkaaa/booking-system/internal/domain"
)

// OpenAPI builds a Swagger 2.0 document for the given entities mounted
// under basePath.
func OpenAPI(basePath string, entities []Entity) *spec.Swagger {
	doc := &spec.Swagger{
		SwaggerProps: spec.SwaggerProps{
			Swagger:     "2.0",
			Info:        &spec.Info{InfoProps: spec.InfoProps{Title: "Booking administration", Version: "1.0"}},
			BasePath:    basePath,
			Consumes:    []string{"application/json"},
			Produces:    []string{"application/json"},
			Paths:       &spec.Paths{Paths: map[string]spec.PathItem{}},
			Definitions: spec.Definitions{},
		},
	}
	doc.Definitions["Error"] = *new(spec.Schema).
		Typed("object", "").
		SetProperty("error", *spec.StringProperty())
	doc.Definitions["DeleteSummary"] = *deleteSummarySchema()

	for _, e := range entities {
		record := e.Singular
		input := e.Singular + "Input"
		doc.Definitions[record] = *recordSchema(e)
		doc.Definitions[input] = *inputSchema(e)
		doc.Definitions[record+"Item"] = *new(spec.Schema).
			Typed("object", "").
			SetProperty("id", *spec.Int64Property()).
			SetProperty("display", *spec.StringProperty()).
			SetProperty("record", *spec.RefSchema("#/definitions/" + record))

		collection := "/" + e.Name + "/"
		item := "/" + e.Name + "/{id}"

		doc.Paths.Paths[collection] = spec.PathItem{PathItemProps: spec.PathItemProps{
			Get: operation("list"+e.Plural, e, "List "+e.Plural).
				RespondsWith(http.StatusOK, ok(spec.ArrayProperty(spec.RefSchema("#/definitions/"+record+"Item")))),
			Post: withErrors(operation("create"+e.Singular, e, "Create "+e.Singular).
				AddParam(spec.BodyParam("body", spec.RefSchema("#/definitions/"+input)).AsRequired()).
				RespondsWith(http.StatusCreated, ok(spec.RefSchema("#/definitions/"+record))), http.StatusBadRequest, http.StatusConflict),
		}}
		doc.Paths.Paths[item] = spec.PathItem{PathItemProps: spec.PathItemProps{
			Parameters: []spec.Parameter{*spec.PathParam("id").Typed("integer", "int64").AsRequired()},
			Get: withErrors(operation("get"+e.Singular, e, "Get "+e.Singular).
				RespondsWith(http.StatusOK, ok(spec.RefSchema("#/definitions/"+record))), http.StatusNotFound),
			Put: withErrors(operation("update"+e.Singular, e, "Replace "+e.Singular).
				AddParam(spec.BodyParam("body", spec.RefSchema("#/definitions/"+input)).AsRequired()).
				RespondsWith(http.StatusOK, ok(spec.RefSchema("#/definitions/"+record))), http.StatusBadRequest, http.StatusNotFound, http.StatusConflict),
			Delete: withErrors(operation("delete"+e.Singular, e, "Delete "+e.Singular+" and its dependents").
				RespondsWith(http.StatusOK, ok(spec.RefSchema("#/definitions/DeleteSummary"))), http.StatusNotFound),
		}}
		doc.Paths.Paths["/"+e.Name+"/schema"] = spec.PathItem{PathItemProps: spec.PathItemProps{
			Get: operation("schema"+e.Singular, e, e.Singular+" field metadata").
				RespondsWith(http.StatusOK, ok(new(spec.Schema).Typed("object", ""))),
		}}
	}
	return doc
}

func operation(id string, e Entity, summary string) *spec.Operation {
	return spec.NewOperation(id).WithTags(e.Plural).WithSummary(summary)
}

func ok(schema *spec.Schema) *spec.Response {
	return spec.NewResponse().WithDescription(http.StatusText(http.StatusOK)).WithSchema(schema)
}

func withErrors(op *spec.Operation, codes ...int) *spec.Operation {
	for _, code := range codes {
		op.RespondsWith(code, spec.NewResponse().
			WithDescription(http.StatusText(code)).
			WithSchema(spec.RefSchema("#/definitions/Error")))
	}
	return op
}

func recordSchema(e Entity) *spec.Schema {
	s := new(spec.Schema).Typed("object", "").SetProperty("id", *spec.Int64Property().AsReadOnly())
	for _, f := range e.Fields {
		p := fieldSchema(f)
		if f.AutoNowAdd {
			p.AsReadOnly()
		}
		s.SetProperty(f.Name, *p)
	}
	return s
}

func inputSchema(e Entity) *spec.Schema {
	s := new(spec.Schema).Typed("object", "")
	for _, f := range e.Editable() {
		s.SetProperty(f.Name, *fieldSchema(f))
		if f.Required {
			s.AddRequired(f.Name)
		}
	}
	return s
}

func fieldSchema(f Field) *spec.Schema {
	var s *spec.Schema
	switch f.Type {
	case TypeEmail:
		s = spec.StrFmtProperty("email")
	case TypeDate:
		s = spec.DateProperty()
	case TypeDateTime:
		s = spec.DateTimeProperty()
	case TypeDecimal:
		s = spec.StrFmtProperty("decimal").WithPattern(`^-?\d{1,6}(\.\d{1,2})?$`)
	case TypeBoolean:
		s = spec.BoolProperty()
	case TypeReference:
		s = spec.Int64Property().WithDescription("id of " + f.References)
	default:
		s = spec.StringProperty()
	}
	s.WithTitle(f.Label)
	if f.MaxLength > 0 {
		s.WithMaxLength(int64(f.MaxLength))
	}
	if len(f.Choices) > 0 {
		values := make([]any, 0, len(f.Choices))
		for _, c := range f.Choices {
			values = append(values, c.Value)
		}
		s.WithEnum(values...)
	}
	if f.Default != nil {
		s.WithDefault(f.Default)
	}
	if f.Nullable {
		s.AsNullable()
	}
	return s
}

func deleteSummarySchema() *spec.Schema {
	s := new(spec.Schema).Typed("object", "")
	for _, name := range []string{
		domain.EntityAirports, domain.EntityAirlines, domain.EntityFlights,
		domain.EntityPassengers, domain.EntityBookings, domain.EntityTickets, domain.EntityPayments,
	} {
		s.SetProperty(name, *spec.Int64Property())
	}
	return s
}
