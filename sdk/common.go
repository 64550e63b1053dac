package sdk

import "github.com/cordonhq/cordon/sdk/meta"

func listQueryParams(opts meta.ListOptions) map[string]interface{} {
	params := map[string]interface{}{}
	if opts.Limit > 0 {
		params["limit"] = opts.Limit
	}
	if opts.Offset > 0 {
		params["offset"] = opts.Offset
	}
	return params
}
