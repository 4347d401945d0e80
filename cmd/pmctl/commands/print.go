package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"project-tracker/pkg/pmclient"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func percent(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d%%", *v)
}

func printProjects(w io.Writer, projects []pmclient.Project) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSTATUS\tOWNER\tSTART\tEND\tTASKS\tMANUAL\tDYNAMIC\tEFFECTIVE")
	for _, p := range projects {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%d\t%d%%\t%s\t%d%%\n",
			p.ID, p.Name, dash(p.Status), dash(p.OwnerName), dash(p.StartDate), dash(p.EndDate),
			p.TaskCount, p.Progress, percent(p.DynamicProgress), p.EffectiveProgress)
	}
	return tw.Flush()
}

func printTasks(w io.Writer, tasks []pmclient.Task) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tPROJECT\tSTATUS\tASSIGNEE\tSTART\tEND\tDUE\tEFFECTIVE")
	for _, t := range tasks {
		assignee := "-"
		if t.AssigneeName != nil {
			assignee = *t.AssigneeName
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%d%%\n",
			t.ID, t.Title, dash(t.ProjectName), t.Status, assignee,
			dash(t.StartDate), dash(t.EndDate), dash(t.DueDate), t.EffectiveProgress)
	}
	return tw.Flush()
}

func printDashboard(w io.Writer, d pmclient.Dashboard) error {
	fmt.Fprintf(w, "Projects:     %d\n", d.TotalProjects)
	fmt.Fprintf(w, "Active tasks: %d\n", d.ActiveTasks)
	fmt.Fprintf(w, "Completed:    %d\n", d.Completed)
	fmt.Fprintf(w, "Members:      %d\n", d.Members)

	if len(d.RecentProjects) > 0 {
		fmt.Fprintln(w, "\nRecent projects:")
		if err := printProjects(w, d.RecentProjects); err != nil {
			return err
		}
	}
	if len(d.UpcomingTasks) > 0 {
		fmt.Fprintln(w, "\nUpcoming tasks:")
		if err := printTasks(w, d.UpcomingTasks); err != nil {
			return err
		}
	}
	return nil
}
