package cmd

const rootLongDescription = `Prodscan works on directories of production stack definition files
(prod1.yml, prod2.yml, … or any *.yml/*.yaml). It reconstructs the service
blocks under the root "services:" section from indentation alone, without
parsing the full file grammar, so malformed neighbors never break a scan.

Subcommands scan for image tags, query which services run on which prods,
collect run option lists, and add profile values in place.`

const tagsLongDescription = `Scan every matching file for service image tags.

By default only custom tags are reported: values that are not a semantic
version, not a commit hash, not a generic label (latest, stable, …) and
contain a "/". Use --all to report every tag value.`

const servicesLongDescription = `Query the service/prod relationship across every matching file.

Pick one mode:
  -s, --service     prods running services matching a name fragment
      --prod        services defined on one prod
      --services-summary   per-service prod counts
      --prods-summary      per-prod service counts`

const optsLongDescription = `Collect run option lists per service across every matching file.

Option values are split on whitespace with quoted substrings kept atomic,
so an option with embedded spaces stays one token.`

const profilesLongDescription = `Add a profile value to services in place.

For every service matching --service, ensures VALUE is a member of the
service's comma-separated profile list. Files where the value is already
present are left byte-identical. Use --dry-run to preview the planned
edits as a diff without writing anything.`
