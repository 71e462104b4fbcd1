package method

// Method enumerates the verbs a route can be registered for.
type Method uint8

const (
	Unknown Method = iota
	GET
	POST
	PUT
	DELETE
	PATCH

	// Count is the last one enum, so contains the greatest integer value of all the
	// methods. So real number of methods is lower by 1
	Count = iota - 1
)

// List contains all the supported HTTP methods. They are sorted by their integer value, however
// Unknown method is not included. So in order to index the List, you must subtract 1 first.
var List = []Method{GET, POST, PUT, DELETE, PATCH}

// Parse is case-sensitive, as methods are.
func Parse(str string) Method {
	switch len(str) {
	case 3:
		if str == "GET" {
			return GET
		} else if str == "PUT" {
			return PUT
		}
	case 4:
		if str == "POST" {
			return POST
		}
	case 5:
		if str == "PATCH" {
			return PATCH
		}
	case 6:
		if str == "DELETE" {
			return DELETE
		}
	}

	return Unknown
}

func (m Method) String() string {
	switch m {
	case GET:
		return "GET"
	case POST:
		return "POST"
	case PUT:
		return "PUT"
	case DELETE:
		return "DELETE"
	case PATCH:
		return "PATCH"
	default:
		return "UNKNOWN"
	}
}
